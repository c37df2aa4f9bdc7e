package mocks

import (
	context "context"

	domain "food-marketplace/revenue-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// OverviewCache is a mock type for the OverviewCache type
type OverviewCache struct {
	mock.Mock
}

func (_m *OverviewCache) GetOverview(ctx context.Context, storeID uuid.UUID, period domain.Period) (*domain.Overview, bool, error) {
	ret := _m.Called(ctx, storeID, period)
	var r0 *domain.Overview
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Overview)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *OverviewCache) SetOverview(ctx context.Context, storeID uuid.UUID, period domain.Period, overview *domain.Overview) error {
	ret := _m.Called(ctx, storeID, period, overview)
	return ret.Error(0)
}

func NewOverviewCache(t testingT) *OverviewCache {
	m := &OverviewCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
