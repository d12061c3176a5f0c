package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"minima-order/order-svc/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(id string) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListOrdersByTable(tableNumber int) ([]domain.Order, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) AttachReceiptURL(orderID, url string) error {
	args := m.Called(orderID, url)
	return args.Error(0)
}

func (m *OrderRepository) SaveReceipt(orderRef string, tableNumber int, pdf []byte) error {
	args := m.Called(orderRef, tableNumber, pdf)
	return args.Error(0)
}

func (m *OrderRepository) GetReceipt(tableNumber int) ([]byte, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type ReceiptCache struct {
	mock.Mock
}

func NewReceiptCache(t testingT) *ReceiptCache {
	m := &ReceiptCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReceiptCache) ReceiptMarkerKey(tableNumber int, orderRef string) string {
	args := m.Called(tableNumber, orderRef)
	return args.String(0)
}

func (m *ReceiptCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *ReceiptCache) SetMarker(ctx context.Context, key, url string) error {
	args := m.Called(ctx, key, url)
	return args.Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type ReceiptRenderer struct {
	mock.Mock
}

func NewReceiptRenderer(t testingT) *ReceiptRenderer {
	m := &ReceiptRenderer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReceiptRenderer) Render(bill *domain.TableBill) ([]byte, error) {
	args := m.Called(bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Submit(ctx context.Context, lines []domain.CartLine, tableNumber, people int) (*domain.Order, error) {
	args := m.Called(ctx, lines, tableNumber, people)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Order(id string) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) BillForTable(tableNumber int) (*domain.TableBill, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableBill), args.Error(1)
}

func (m *OrderServiceInterface) Receipt(ctx context.Context, tableNumber int) ([]byte, string, error) {
	args := m.Called(ctx, tableNumber)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *OrderServiceInterface) CheckoutCode(tableNumber int) string {
	args := m.Called(tableNumber)
	return args.String(0)
}

func (m *OrderServiceInterface) CheckoutQR(tableNumber int) ([]byte, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
