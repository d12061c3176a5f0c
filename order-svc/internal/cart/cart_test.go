package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minima-order/order-svc/internal/domain"
	"minima-order/order-svc/internal/menu"
)

func testCatalog() *menu.Catalog {
	return menu.NewCatalog(
		domain.MenuItem{ID: 1, Name: "Margherita Pizza", Price: 1200},
		domain.MenuItem{ID: 7, Name: "Cola", Price: 300},
		domain.MenuItem{ID: 9, Name: "Beer", Price: 500},
	)
}

// checkInvariant verifies that Total always equals the sum of price*quantity
// over lines with quantity > 0.
func checkInvariant(t *testing.T, c *Cart) {
	t.Helper()
	expected := 0
	for _, line := range c.Lines() {
		if line.Quantity > 0 {
			expected += line.Price * line.Quantity
		}
	}
	assert.Equal(t, expected, c.Total())
}

func TestCart_AddItem(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)

	require.NoError(t, c.AddItem(1))
	require.NoError(t, c.AddItem(1))
	require.NoError(t, c.AddItem(7))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 2700, c.Total())
	assert.Equal(t, 3, c.ItemCount())
}

func TestCart_AddItem_unknown(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)
	assert.ErrorIs(t, c.AddItem(42), menu.ErrItemNotFound)
	assert.Empty(t, c.Lines())
}

func TestCart_AddItemQuantity_clamped(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)

	require.NoError(t, c.AddItemQuantity(1, 15))
	assert.Equal(t, 9, c.Lines()[0].Quantity)

	require.NoError(t, c.AddItemQuantity(7, 0))
	assert.Equal(t, 1, c.Lines()[1].Quantity)
}

func TestCart_Adjust_floorAtOne(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)
	require.NoError(t, c.AddItemQuantity(1, 2))

	c.Adjust(1, -1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	// dropping below 1 removes the line
	c.Adjust(1, -1)
	assert.Empty(t, c.Lines())
}

func TestCart_Adjust_hideAtZero(t *testing.T) {
	c := New(testCatalog(), HideAtZero)
	require.NoError(t, c.AddItemQuantity(1, 2))

	c.Adjust(1, -5)

	// line stays visible at zero but is excluded everywhere that counts
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 0, c.Lines()[0].Quantity)
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
	assert.Empty(t, c.SubmitLines())
}

func TestCart_Adjust_unknownIgnored(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)
	require.NoError(t, c.AddItem(1))

	c.Adjust(9, 3)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].ID)
}

func TestCart_Remove(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)
	require.NoError(t, c.AddItemQuantity(1, 3))
	require.NoError(t, c.AddItem(7))

	c.Remove(1)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 7, c.Lines()[0].ID)
	assert.Equal(t, 300, c.Total())
}

func TestCart_TotalInvariantUnderMutation(t *testing.T) {
	for _, behavior := range []MinQuantityBehavior{FloorAtOne, HideAtZero} {
		c := New(testCatalog(), behavior)

		mutations := []func(){
			func() { c.AddItem(1) },
			func() { c.AddItemQuantity(7, 4) },
			func() { c.Adjust(1, 2) },
			func() { c.Adjust(7, -3) },
			func() { c.AddItem(9) },
			func() { c.Adjust(9, -5) },
			func() { c.Remove(7) },
			func() { c.AddItemQuantity(1, 9) },
			func() { c.Adjust(1, -1) },
		}
		for _, mutate := range mutations {
			mutate()
			checkInvariant(t, c)
		}
	}
}

func TestCart_Clear(t *testing.T) {
	c := New(testCatalog(), FloorAtOne)
	require.NoError(t, c.AddItem(1))

	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.Total())
}

func TestParseBehavior(t *testing.T) {
	assert.Equal(t, HideAtZero, ParseBehavior("hide_at_zero"))
	assert.Equal(t, FloorAtOne, ParseBehavior("floor_at_one"))
	assert.Equal(t, FloorAtOne, ParseBehavior(""))
}
