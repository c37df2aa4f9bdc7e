package mocks

import (
	context "context"
	time "time"

	domain "food-marketplace/revenue-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// RevenueServiceInterface is a mock type for the RevenueServiceInterface type
type RevenueServiceInterface struct {
	mock.Mock
}

func (_m *RevenueServiceInterface) EnsureOwner(ctx context.Context, sellerID, storeID uuid.UUID) error {
	ret := _m.Called(ctx, sellerID, storeID)
	return ret.Error(0)
}

func (_m *RevenueServiceInterface) Overview(ctx context.Context, storeID uuid.UUID, period string) (*domain.Overview, error) {
	ret := _m.Called(ctx, storeID, period)
	var r0 *domain.Overview
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Overview)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueServiceInterface) Daily(ctx context.Context, storeID uuid.UUID, period string) ([]domain.DailyRevenue, error) {
	ret := _m.Called(ctx, storeID, period)
	var r0 []domain.DailyRevenue
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.DailyRevenue)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueServiceInterface) TopOrders(ctx context.Context, storeID uuid.UUID, period string, take int) ([]domain.OrderRevenue, error) {
	ret := _m.Called(ctx, storeID, period, take)
	var r0 []domain.OrderRevenue
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderRevenue)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueServiceInterface) ByCategory(ctx context.Context, storeID uuid.UUID, period string) ([]domain.CategoryRevenue, error) {
	ret := _m.Called(ctx, storeID, period)
	var r0 []domain.CategoryRevenue
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.CategoryRevenue)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueServiceInterface) ByPaymentMethod(ctx context.Context, storeID uuid.UUID, period string) ([]domain.PaymentMethodRevenue, error) {
	ret := _m.Called(ctx, storeID, period)
	var r0 []domain.PaymentMethodRevenue
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.PaymentMethodRevenue)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueServiceInterface) DetailedReport(ctx context.Context, storeID uuid.UUID, start, end *time.Time) (*domain.DetailedReport, error) {
	ret := _m.Called(ctx, storeID, start, end)
	var r0 *domain.DetailedReport
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.DetailedReport)
	}
	return r0, ret.Error(1)
}

func NewRevenueServiceInterface(t testingT) *RevenueServiceInterface {
	m := &RevenueServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
