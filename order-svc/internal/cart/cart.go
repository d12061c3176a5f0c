package cart

import (
	"minima-order/order-svc/internal/domain"
	"minima-order/order-svc/internal/menu"
)

// MinQuantityBehavior decides what happens when a line is decremented below 1.
type MinQuantityBehavior int

const (
	// FloorAtOne removes the line entirely once it would drop under 1.
	FloorAtOne MinQuantityBehavior = iota
	// HideAtZero clamps the quantity at 0 and keeps the line around; zero
	// lines stay visible but are excluded from totals and submission.
	HideAtZero
)

func ParseBehavior(s string) MinQuantityBehavior {
	if s == "hide_at_zero" {
		return HideAtZero
	}
	return FloorAtOne
}

// The quantity picker offers 1 through 9 per add.
const maxPickQuantity = 9

// Cart accumulates the selected items for one dining session. It is owned by
// the session shell and is never persisted; submission snapshots its lines.
type Cart struct {
	catalog  *menu.Catalog
	behavior MinQuantityBehavior
	lines    []domain.CartLine
}

func New(catalog *menu.Catalog, behavior MinQuantityBehavior) *Cart {
	return &Cart{catalog: catalog, behavior: behavior}
}

// AddItem adds one unit of a menu item, incrementing an existing line.
func (c *Cart) AddItem(id int) error {
	return c.AddItemQuantity(id, 1)
}

// AddItemQuantity adds a chosen quantity, clamped to [1, 9].
func (c *Cart) AddItemQuantity(id, quantity int) error {
	item, err := c.catalog.Lookup(id)
	if err != nil {
		return err
	}

	if quantity < 1 {
		quantity = 1
	}
	if quantity > maxPickQuantity {
		quantity = maxPickQuantity
	}

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, domain.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
	})
	return nil
}

// Adjust changes an existing line's quantity by delta. Unknown ids are
// ignored. The floor policy comes from the configured MinQuantityBehavior.
func (c *Cart) Adjust(id, delta int) {
	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		next := c.lines[i].Quantity + delta
		switch c.behavior {
		case HideAtZero:
			if next < 0 {
				next = 0
			}
			c.lines[i].Quantity = next
		default:
			if next < 1 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return
			}
			c.lines[i].Quantity = next
		}
		return
	}
}

// Remove deletes the line unconditionally.
func (c *Cart) Remove(id int) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total sums price times quantity over lines with quantity > 0.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.lines {
		if line.Quantity > 0 {
			total += line.Price * line.Quantity
		}
	}
	return total
}

// ItemCount sums quantities over lines with quantity > 0; drives the cart
// badge counter.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		if line.Quantity > 0 {
			count += line.Quantity
		}
	}
	return count
}

// Lines returns a copy of every line, including zero-quantity lines kept
// visible under HideAtZero.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// SubmitLines returns the lines that actually get submitted: quantity > 0.
func (c *Cart) SubmitLines() []domain.CartLine {
	out := make([]domain.CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		if line.Quantity > 0 {
			out = append(out, line)
		}
	}
	return out
}

func (c *Cart) Clear() {
	c.lines = nil
}
