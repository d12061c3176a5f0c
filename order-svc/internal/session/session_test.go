package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minima-order/order-svc/internal/cart"
	"minima-order/order-svc/internal/menu"
)

func newManager() *Manager {
	return NewManager(menu.Default(), cart.FloorAtOne)
}

func TestManager_Open(t *testing.T) {
	m := newManager()

	s, err := m.Open(5)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 5, s.TableNumber)
	assert.Equal(t, 1, s.People)
	assert.Equal(t, TabAdd, s.ActiveTab)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManager_Open_invalidTable(t *testing.T) {
	m := newManager()
	_, err := m.Open(0)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestManager_Close(t *testing.T) {
	m := newManager()
	s, err := m.Open(3)
	require.NoError(t, err)

	m.Close(s.ID)
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_SetPeople(t *testing.T) {
	m := newManager()
	s, _ := m.Open(1)

	assert.NoError(t, s.SetPeople(4))
	assert.Equal(t, 4, s.People)

	assert.ErrorIs(t, s.SetPeople(0), ErrInvalidPeople)
	assert.ErrorIs(t, s.SetPeople(21), ErrInvalidPeople)
	assert.Equal(t, 4, s.People)
}

func TestSession_SwitchTab(t *testing.T) {
	tests := []struct {
		name string
		from Tab
		to   Tab
		ok   bool
	}{
		{"add_to_quantity", TabAdd, TabQuantity, true},
		{"quantity_to_cart", TabQuantity, TabCart, true},
		{"cart_to_history", TabCart, TabHistory, true},
		{"history_to_checkout", TabHistory, TabCheckout, true},
		{"cart_to_checkout", TabCart, TabCheckout, true},
		{"quantity_back_to_add", TabQuantity, TabAdd, true},
		{"add_straight_to_checkout", TabAdd, TabCheckout, false},
		{"quantity_to_history", TabQuantity, TabHistory, false},
		{"checkout_is_terminal", TabCheckout, TabAdd, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := &Session{ActiveTab: testCase.from}
			err := s.SwitchTab(testCase.to)
			if testCase.ok {
				assert.NoError(t, err)
				assert.Equal(t, testCase.to, s.ActiveTab)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, testCase.from, s.ActiveTab)
			}
		})
	}
}

func TestSession_FullFlow(t *testing.T) {
	s := &Session{ActiveTab: TabAdd}

	for _, next := range []Tab{TabQuantity, TabCart, TabHistory, TabCheckout} {
		require.NoError(t, s.SwitchTab(next))
	}
	assert.Equal(t, TabCheckout, s.ActiveTab)
}
