package mocks

import (
	context "context"

	domain "food-marketplace/agg-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) UpdateStoreRating(ctx context.Context, storeID uuid.UUID) (*domain.RatingSnapshot, error) {
	ret := _m.Called(ctx, storeID)
	var r0 *domain.RatingSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RatingSnapshot)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) CacheStoreRating(ctx context.Context, snapshot *domain.RatingSnapshot) error {
	ret := _m.Called(ctx, snapshot)
	return ret.Error(0)
}

func (_m *StoreInterface) InvalidateRevenue(ctx context.Context, storeID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, storeID)
	return ret.Int(0), ret.Error(1)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
