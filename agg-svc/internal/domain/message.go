package domain

import "time"

// OrderEvent mirrors the message order-svc publishes on the orders topic.
type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	TableNumber int         `json:"table_number"`
	People      int         `json:"people"`
	Total       int         `json:"total"`
	Items       []OrderItem `json:"items"`
	Timestamp   time.Time   `json:"timestamp"`
}

type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// PopularItem is one row of the daily popularity leaderboard. Score is the
// number of units ordered today.
type PopularItem struct {
	ItemID int     `json:"item_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

type TableRevenue struct {
	TableNumber int    `json:"table_number"`
	Date        string `json:"date"`
	Revenue     int    `json:"revenue"`
}
