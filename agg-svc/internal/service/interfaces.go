package service

import (
	"context"

	"minima-order/agg-svc/internal/domain"
	"minima-order/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(event domain.OrderEvent) error
	TopToday(limit int) ([]domain.PopularItem, error)
	TableRevenueToday(tableNumber int) (*domain.TableRevenue, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
