package mocks

import (
	context "context"

	domain "food-marketplace/market-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// CartRepository is a mock type for the CartRepository type
type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) GetOrCreateCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error) {
	ret := _m.Called(ctx, customerID)
	var r0 *domain.Cart
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartRepository) UpsertCartItem(ctx context.Context, cartID, menuID uuid.UUID, quantity int, note string) error {
	ret := _m.Called(ctx, cartID, menuID, quantity, note)
	return ret.Error(0)
}

func (_m *CartRepository) UpdateCartItem(ctx context.Context, cartID, itemID uuid.UUID, quantity int, note string) (int64, error) {
	ret := _m.Called(ctx, cartID, itemID, quantity, note)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *CartRepository) RemoveCartItem(ctx context.Context, cartID, itemID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, cartID, itemID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *CartRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	ret := _m.Called(ctx, cartID)
	return ret.Error(0)
}

// NewCartRepository creates a new instance of CartRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
