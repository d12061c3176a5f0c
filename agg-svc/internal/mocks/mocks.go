package mocks

import (
	"github.com/stretchr/testify/mock"

	"minima-order/agg-svc/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) RecordOrder(event domain.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *StoreInterface) TopToday(limit int) ([]domain.PopularItem, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularItem), args.Error(1)
}

func (m *StoreInterface) TableRevenueToday(tableNumber int) (*domain.TableRevenue, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableRevenue), args.Error(1)
}
