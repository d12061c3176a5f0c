package service

import (
	"sort"

	"minima-order/order-svc/internal/domain"
)

// SortByCreatedAt puts a table's orders newest first. Fetch order from the
// store is undefined; display order is fixed here.
func SortByCreatedAt(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// MergeLines flattens every order's cart into one combined line per distinct
// menu item. Name and price come from the first occurrence seen; insertion
// order of first sight is preserved.
func MergeLines(orders []domain.Order) []domain.CartLine {
	index := make(map[int]int)
	merged := []domain.CartLine{}
	for _, order := range orders {
		for _, line := range order.Cart {
			if pos, ok := index[line.ID]; ok {
				merged[pos].Quantity += line.Quantity
				continue
			}
			index[line.ID] = len(merged)
			merged = append(merged, line)
		}
	}
	return merged
}

// GrandTotal sums the per-order totals captured at submission time. Menu
// price changes after the fact must not alter a table's historical bill, so
// nothing is recomputed from the merged lines.
func GrandTotal(orders []domain.Order) int {
	total := 0
	for _, order := range orders {
		total += order.Total
	}
	return total
}
