package domain

import "time"

type MenuItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CartLine is one distinct menu item in a cart. Price is in yen, no fractional
// unit, so totals stay exact integers end to end.
type CartLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order is one persisted submission of a cart. Immutable after creation except
// for ReceiptURL, which is attached once a receipt has been generated.
type Order struct {
	ID          string     `json:"id"`
	Cart        []CartLine `json:"cart"`
	TableNumber int        `json:"table_number"`
	People      int        `json:"people"`
	Total       int        `json:"total"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ReceiptURL  string     `json:"receipt_url,omitempty"`
}

// TableBill is the flattened view of every order a table has submitted:
// orders newest first, one merged line per distinct item, and the sum of the
// per-order totals captured at submission time.
type TableBill struct {
	TableNumber int        `json:"table_number"`
	People      int        `json:"people"`
	Orders      []Order    `json:"orders"`
	Lines       []CartLine `json:"lines"`
	GrandTotal  int        `json:"grand_total"`
}

type OrderEvent struct {
	Type        string     `json:"type"`
	OrderID     string     `json:"order_id"`
	TableNumber int        `json:"table_number"`
	People      int        `json:"people"`
	Total       int        `json:"total"`
	Items       []CartLine `json:"items"`
	Timestamp   time.Time  `json:"timestamp"`
}
