package mocks

import (
	context "context"

	domain "food-marketplace/market-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// DiscoveryRepository is a mock type for the DiscoveryRepository type
type DiscoveryRepository struct {
	mock.Mock
}

func (_m *DiscoveryRepository) SearchStores(ctx context.Context, q domain.StoreSearch) ([]domain.StoreResult, error) {
	ret := _m.Called(ctx, q)
	var r0 []domain.StoreResult
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.StoreResult)
	}
	return r0, ret.Error(1)
}

func (_m *DiscoveryRepository) SearchMenus(ctx context.Context, q domain.MenuSearch) ([]domain.MenuResult, error) {
	ret := _m.Called(ctx, q)
	var r0 []domain.MenuResult
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuResult)
	}
	return r0, ret.Error(1)
}

func (_m *DiscoveryRepository) SuggestNames(ctx context.Context, term string, limit int) ([]string, error) {
	ret := _m.Called(ctx, term, limit)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func (_m *DiscoveryRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ret := _m.Called(ctx)
	var r0 *domain.DashboardStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.DashboardStats)
	}
	return r0, ret.Error(1)
}

// NewDiscoveryRepository creates a new instance of DiscoveryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDiscoveryRepository(t testingT) *DiscoveryRepository {
	m := &DiscoveryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
