package service

import (
	"context"

	"minima-order/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Submit(ctx context.Context, lines []domain.CartLine, tableNumber, people int) (*domain.Order, error)
	Order(id string) (*domain.Order, error)
	BillForTable(tableNumber int) (*domain.TableBill, error)
	Receipt(ctx context.Context, tableNumber int) ([]byte, string, error)
	CheckoutCode(tableNumber int) string
	CheckoutQR(tableNumber int) ([]byte, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id string) (*domain.Order, error)
	ListOrdersByTable(tableNumber int) ([]domain.Order, error)
	AttachReceiptURL(orderID, url string) error
	SaveReceipt(orderRef string, tableNumber int, pdf []byte) error
	GetReceipt(tableNumber int) ([]byte, error)
}

type ReceiptCache interface {
	ReceiptMarkerKey(tableNumber int, orderRef string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key, url string) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type ReceiptRenderer interface {
	Render(bill *domain.TableBill) ([]byte, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
