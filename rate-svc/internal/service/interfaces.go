package service

import (
	"context"
	"time"

	"food-marketplace/auth"
	"food-marketplace/rate-svc/internal/domain"

	"github.com/google/uuid"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, customerID uuid.UUID, input domain.ReviewInput) (*domain.Review, error)
	Update(ctx context.Context, customerID, reviewID uuid.UUID, input domain.ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, caller auth.Identity, reviewID uuid.UUID) error
	Respond(ctx context.Context, sellerID, reviewID uuid.UUID, text string) (*domain.Review, error)
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error)
	ListStoreReviews(ctx context.Context, storeID uuid.UUID, page, pageSize int) ([]domain.Review, error)
	ListMenuReviews(ctx context.Context, menuID uuid.UUID, page, pageSize int) ([]domain.Review, error)
	Statistics(ctx context.Context, storeID uuid.UUID) (*domain.Statistics, error)
}

type ReviewRepository interface {
	GetOrderForReview(ctx context.Context, orderID uuid.UUID) (*domain.OrderRef, error)
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	InsertReview(ctx context.Context, review *domain.Review) error
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetReviewByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error)
	UpdateReview(ctx context.Context, review *domain.Review) error
	SetResponse(ctx context.Context, id uuid.UUID, text string, at time.Time) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
	ListStoreReviews(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]domain.Review, error)
	ListMenuReviews(ctx context.Context, menuID uuid.UUID, limit, offset int) ([]domain.Review, error)
	RatingDistribution(ctx context.Context, storeID uuid.UUID) (map[string]int, error)
	GetStoreOwner(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error)
}

type ReviewCache interface {
	ReviewMarkerKey(orderID uuid.UUID) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
	ClearMarker(ctx context.Context, key string) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, msg domain.KafkaMessage) error
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
