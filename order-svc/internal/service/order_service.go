package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"minima-order/order-svc/internal/domain"
	"minima-order/order-svc/internal/menu"
)

var (
	ErrEmptyCart          = errors.New("cart has no items")
	ErrInvalidTableNumber = errors.New("table number is missing or not positive")
	ErrInvalidPeople      = errors.New("party size is missing or not positive")
	ErrNoOrders           = errors.New("no orders found for this table")
)

type OrderService struct {
	catalog    *menu.Catalog
	repository OrderRepository
	cache      ReceiptCache
	publisher  OrderPublisher
	renderer   ReceiptRenderer
	qrEncoder  QRGenerator
}

func NewOrderService(catalog *menu.Catalog, repository OrderRepository, cache ReceiptCache, publisher OrderPublisher, renderer ReceiptRenderer, qr QRGenerator) *OrderService {
	return &OrderService{
		catalog:    catalog,
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		renderer:   renderer,
		qrEncoder:  qr,
	}
}

// Submit validates and persists one order. Names, prices and the total are
// re-resolved against the catalog; the caller's payload is never trusted.
// Exactly one order is created per successful call, and retries after a lost
// acknowledgment will create a second one.
func (s *OrderService) Submit(ctx context.Context, lines []domain.CartLine, tableNumber, people int) (*domain.Order, error) {
	if tableNumber <= 0 {
		return nil, ErrInvalidTableNumber
	}
	if people <= 0 {
		return nil, ErrInvalidPeople
	}

	submitted := make([]domain.CartLine, 0, len(lines))
	total := 0
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		item, err := s.catalog.Lookup(line.ID)
		if err != nil {
			return nil, err
		}
		submitted = append(submitted, domain.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: line.Quantity,
		})
		total += item.Price * line.Quantity
	}
	if len(submitted) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		Cart:        submitted,
		TableNumber: tableNumber,
		People:      people,
		Total:       total,
		Status:      domain.StatusPending,
	}
	if err := s.repository.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        "order_submitted",
			OrderID:     order.ID,
			TableNumber: order.TableNumber,
			People:      order.People,
			Total:       order.Total,
			Items:       order.Cart,
			Timestamp:   time.Now(),
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("WARNING: failed to publish order event for %s: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *OrderService) Order(id string) (*domain.Order, error) {
	return s.repository.GetOrder(id)
}

// BillForTable aggregates every order a table has submitted into one flat
// bill. People is taken from the most recent order, for display only.
func (s *OrderService) BillForTable(tableNumber int) (*domain.TableBill, error) {
	if tableNumber <= 0 {
		return nil, ErrInvalidTableNumber
	}

	orders, err := s.repository.ListOrdersByTable(tableNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	SortByCreatedAt(orders)

	bill := &domain.TableBill{
		TableNumber: tableNumber,
		Orders:      orders,
		Lines:       MergeLines(orders),
		GrandTotal:  GrandTotal(orders),
	}
	if len(orders) > 0 {
		bill.People = orders[0].People
	}
	return bill, nil
}

// Receipt returns the PDF receipt for a table's aggregated bill along with
// its URL. An already generated receipt is reused; a new order on the table
// means the newest order carries no receipt URL yet, so the bill is rendered
// again.
func (s *OrderService) Receipt(ctx context.Context, tableNumber int) ([]byte, string, error) {
	bill, err := s.BillForTable(tableNumber)
	if err != nil {
		return nil, "", err
	}
	if len(bill.Orders) == 0 {
		return nil, "", ErrNoOrders
	}

	head := bill.Orders[0]
	url := receiptPath(tableNumber)

	if s.cache != nil {
		if exists, _ := s.cache.Exists(ctx, s.cache.ReceiptMarkerKey(tableNumber, head.ID)); exists {
			if pdf, err := s.repository.GetReceipt(tableNumber); err == nil && len(pdf) > 0 {
				return pdf, url, nil
			}
		}
	}

	if head.ReceiptURL != "" {
		pdf, err := s.repository.GetReceipt(tableNumber)
		if err == nil && len(pdf) > 0 {
			return pdf, head.ReceiptURL, nil
		}
		log.Printf("WARNING: stored receipt for table %d unavailable, regenerating: %v", tableNumber, err)
	}

	pdf, err := s.renderer.Render(bill)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}

	if err := s.repository.SaveReceipt(head.ID, tableNumber, pdf); err != nil {
		return nil, "", fmt.Errorf("failed to store receipt: %w", err)
	}
	if err := s.repository.AttachReceiptURL(head.ID, url); err != nil {
		log.Printf("WARNING: failed to attach receipt url to order %s: %v", head.ID, err)
	}
	if s.cache != nil {
		if err := s.cache.SetMarker(ctx, s.cache.ReceiptMarkerKey(tableNumber, head.ID), url); err != nil {
			log.Printf("WARNING: failed to cache receipt marker for table %d: %v", tableNumber, err)
		}
	}

	return pdf, url, nil
}

// CheckoutCode builds the value shown at the register, scanned from the
// checkout screen.
func (s *OrderService) CheckoutCode(tableNumber int) string {
	return fmt.Sprintf("TABLE%d_%d", tableNumber, time.Now().UnixMilli())
}

func (s *OrderService) CheckoutQR(tableNumber int) ([]byte, error) {
	return s.qrEncoder.Generate(s.CheckoutCode(tableNumber))
}

func receiptPath(tableNumber int) string {
	return fmt.Sprintf("/api/tables/%d/receipt", tableNumber)
}
