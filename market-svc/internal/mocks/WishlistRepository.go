package mocks

import (
	context "context"

	domain "food-marketplace/market-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// WishlistRepository is a mock type for the WishlistRepository type
type WishlistRepository struct {
	mock.Mock
}

func (_m *WishlistRepository) AddWishlist(ctx context.Context, customerID, menuID uuid.UUID) error {
	ret := _m.Called(ctx, customerID, menuID)
	return ret.Error(0)
}

func (_m *WishlistRepository) RemoveWishlist(ctx context.Context, customerID, menuID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, customerID, menuID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *WishlistRepository) ListWishlist(ctx context.Context, customerID uuid.UUID) ([]domain.WishlistItem, error) {
	ret := _m.Called(ctx, customerID)
	var r0 []domain.WishlistItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.WishlistItem)
	}
	return r0, ret.Error(1)
}

func (_m *WishlistRepository) InWishlist(ctx context.Context, customerID, menuID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, customerID, menuID)
	return ret.Bool(0), ret.Error(1)
}

// NewWishlistRepository creates a new instance of WishlistRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWishlistRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *WishlistRepository {
	m := &WishlistRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
