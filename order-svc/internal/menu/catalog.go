package menu

import (
	"errors"
	"sort"

	"minima-order/order-svc/internal/domain"
)

var ErrItemNotFound = errors.New("menu item not found")

// Catalog is an immutable lookup of menu item id to item. It is built once at
// startup and handed to everything that needs it; there is no package-level
// mutable menu.
type Catalog struct {
	items map[int]domain.MenuItem
}

func NewCatalog(items ...domain.MenuItem) *Catalog {
	m := make(map[int]domain.MenuItem, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return &Catalog{items: m}
}

// Default returns the fixed in-store menu. A production deployment would load
// this from the database instead.
func Default() *Catalog {
	return NewCatalog(
		domain.MenuItem{ID: 1, Name: "Margherita Pizza", Price: 1200},
		domain.MenuItem{ID: 2, Name: "Caesar Salad", Price: 800},
		domain.MenuItem{ID: 3, Name: "Carbonara", Price: 1100},
		domain.MenuItem{ID: 4, Name: "Meat Sauce Pasta", Price: 1300},
		domain.MenuItem{ID: 5, Name: "Hamburg Steak", Price: 1500},
		domain.MenuItem{ID: 6, Name: "Omurice", Price: 900},
		domain.MenuItem{ID: 7, Name: "Cola", Price: 300},
		domain.MenuItem{ID: 8, Name: "Orange Juice", Price: 300},
		domain.MenuItem{ID: 9, Name: "Beer", Price: 500},
		domain.MenuItem{ID: 10, Name: "Ice Cream", Price: 400},
	)
}

func (c *Catalog) Lookup(id int) (domain.MenuItem, error) {
	item, ok := c.items[id]
	if !ok {
		return domain.MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

func (c *Catalog) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
