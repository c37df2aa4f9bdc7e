package mocks

import (
	context "context"
	time "time"

	domain "food-marketplace/revenue-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// RevenueRepository is a mock type for the RevenueRepository type
type RevenueRepository struct {
	mock.Mock
}

func (_m *RevenueRepository) GetStoreOwner(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error) {
	ret := _m.Called(ctx, storeID)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

func (_m *RevenueRepository) CompletedOrders(ctx context.Context, storeID uuid.UUID, start, end time.Time) ([]domain.CompletedOrder, error) {
	ret := _m.Called(ctx, storeID, start, end)
	var r0 []domain.CompletedOrder
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.CompletedOrder)
	}
	return r0, ret.Error(1)
}

func NewRevenueRepository(t testingT) *RevenueRepository {
	m := &RevenueRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
