package service

import (
	"context"

	"food-marketplace/agg-svc/internal/domain"
	"food-marketplace/agg-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	UpdateStoreRating(ctx context.Context, storeID uuid.UUID) (*domain.RatingSnapshot, error)
	CacheStoreRating(ctx context.Context, snapshot *domain.RatingSnapshot) error
	InvalidateRevenue(ctx context.Context, storeID uuid.UUID) (int, error)
}

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Run(ctx context.Context, name string, reader MessageReader, handle func(context.Context, []byte))
	HandleReview(ctx context.Context, value []byte)
	HandleOrderEvent(ctx context.Context, value []byte)
	ProcessReview(ctx context.Context, msg domain.ReviewEvent) error
	ProcessOrderEvent(ctx context.Context, msg domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
