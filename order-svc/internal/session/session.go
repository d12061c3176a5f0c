package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"minima-order/order-svc/internal/cart"
	"minima-order/order-svc/internal/menu"
)

// Tab is the active screen of the kiosk flow.
type Tab string

const (
	TabAdd      Tab = "add"
	TabQuantity Tab = "quantity"
	TabCart     Tab = "cart"
	TabHistory  Tab = "history"
	TabCheckout Tab = "checkout"
)

// transitions is the explicit tab flow: add -> quantity -> cart -> history ->
// checkout. Ordering more items is always possible until checkout, which is
// terminal for the session.
var transitions = map[Tab][]Tab{
	TabAdd:      {TabQuantity, TabCart, TabHistory},
	TabQuantity: {TabAdd, TabCart},
	TabCart:     {TabAdd, TabHistory, TabCheckout},
	TabHistory:  {TabAdd, TabCart, TabCheckout},
	TabCheckout: {},
}

var (
	ErrNotFound          = errors.New("session not found")
	ErrInvalidTable      = errors.New("table number must be positive")
	ErrInvalidPeople     = errors.New("party size must be between 1 and 20")
	ErrInvalidTransition = errors.New("invalid tab transition")
)

// Session is the per-customer UI state: where they sit, how many they are,
// which tab is active and what is in the cart. Nothing here is persisted.
type Session struct {
	ID          string     `json:"session_id"`
	TableNumber int        `json:"table_number"`
	People      int        `json:"people"`
	ActiveTab   Tab        `json:"active_tab"`
	Cart        *cart.Cart `json:"-"`
}

func (s *Session) SetPeople(n int) error {
	if n < 1 || n > 20 {
		return ErrInvalidPeople
	}
	s.People = n
	return nil
}

// SwitchTab moves to the requested tab if the transition table allows it.
func (s *Session) SwitchTab(next Tab) error {
	for _, allowed := range transitions[s.ActiveTab] {
		if allowed == next {
			s.ActiveTab = next
			return nil
		}
	}
	return ErrInvalidTransition
}

// Manager tracks open sessions. Sessions are independent of each other; the
// map is only guarded because the HTTP server serves tables concurrently.
type Manager struct {
	mu       sync.Mutex
	catalog  *menu.Catalog
	behavior cart.MinQuantityBehavior
	sessions map[string]*Session
}

func NewManager(catalog *menu.Catalog, behavior cart.MinQuantityBehavior) *Manager {
	return &Manager{
		catalog:  catalog,
		behavior: behavior,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Open(tableNumber int) (*Session, error) {
	if tableNumber <= 0 {
		return nil, ErrInvalidTable
	}

	s := &Session{
		ID:          uuid.NewString(),
		TableNumber: tableNumber,
		People:      1,
		ActiveTab:   TabAdd,
		Cart:        cart.New(m.catalog, m.behavior),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
