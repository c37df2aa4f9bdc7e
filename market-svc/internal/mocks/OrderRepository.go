package mocks

import (
	context "context"

	domain "food-marketplace/market-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	ret := _m.Called(ctx, customerID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListStoreOrders(ctx context.Context, storeID uuid.UUID, status domain.OrderStatus) ([]domain.Order, error) {
	ret := _m.Called(ctx, storeID, status)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, reason string) error {
	ret := _m.Called(ctx, id, status, reason)
	return ret.Error(0)
}

func (_m *OrderRepository) UpdatePayment(ctx context.Context, id uuid.UUID, paymentStatus domain.PaymentStatus, status domain.OrderStatus) error {
	ret := _m.Called(ctx, id, paymentStatus, status)
	return ret.Error(0)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
