package service

import (
	"context"
	"time"

	"food-marketplace/revenue-svc/internal/domain"

	"github.com/google/uuid"
)

type RevenueServiceInterface interface {
	EnsureOwner(ctx context.Context, sellerID, storeID uuid.UUID) error
	Overview(ctx context.Context, storeID uuid.UUID, period string) (*domain.Overview, error)
	Daily(ctx context.Context, storeID uuid.UUID, period string) ([]domain.DailyRevenue, error)
	TopOrders(ctx context.Context, storeID uuid.UUID, period string, take int) ([]domain.OrderRevenue, error)
	ByCategory(ctx context.Context, storeID uuid.UUID, period string) ([]domain.CategoryRevenue, error)
	ByPaymentMethod(ctx context.Context, storeID uuid.UUID, period string) ([]domain.PaymentMethodRevenue, error)
	DetailedReport(ctx context.Context, storeID uuid.UUID, start, end *time.Time) (*domain.DetailedReport, error)
}

type RevenueRepository interface {
	GetStoreOwner(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error)
	CompletedOrders(ctx context.Context, storeID uuid.UUID, start, end time.Time) ([]domain.CompletedOrder, error)
}

type OverviewCache interface {
	GetOverview(ctx context.Context, storeID uuid.UUID, period domain.Period) (*domain.Overview, bool, error)
	SetOverview(ctx context.Context, storeID uuid.UUID, period domain.Period, overview *domain.Overview) error
}

var _ RevenueServiceInterface = (*RevenueService)(nil)
