package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"food-marketplace/agg-svc/internal/domain"

	"github.com/google/uuid"
)

const DefaultRetryDelay = time.Second

type Consumer struct {
	Store StoreInterface
	// RetryDelay is the pause after a failed read before the next attempt.
	RetryDelay time.Duration
}

func NewConsumer(store StoreInterface) *Consumer {
	return &Consumer{Store: store, RetryDelay: DefaultRetryDelay}
}

// Run reads until ctx is cancelled or the reader is closed. Handler failures never stop the loop;
// read failures are retried after RetryDelay.
func (c *Consumer) Run(ctx context.Context, name string, reader MessageReader, handle func(context.Context, []byte)) {
	log.Printf("Starting %s consumer...", name)
	for {
		message, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Printf("%s consumer stopped", name)
				return
			}
			log.Printf("Error reading %s message: %v", name, err)
			select {
			case <-ctx.Done():
				log.Printf("%s consumer stopped", name)
				return
			case <-time.After(c.RetryDelay):
			}
			continue
		}
		handle(ctx, message.Value)
	}
}

func (c *Consumer) HandleReview(ctx context.Context, value []byte) {
	var msg domain.ReviewEvent
	if err := json.Unmarshal(value, &msg); err != nil {
		log.Printf("Error unmarshaling review message: %v", err)
		return
	}
	if err := c.ProcessReview(ctx, msg); err != nil {
		log.Printf("Error processing review %s: %v", msg.ReviewID, err)
	}
}

func (c *Consumer) HandleOrderEvent(ctx context.Context, value []byte) {
	var msg domain.OrderEvent
	if err := json.Unmarshal(value, &msg); err != nil {
		log.Printf("Error unmarshaling order event: %v", err)
		return
	}
	if err := c.ProcessOrderEvent(ctx, msg); err != nil {
		log.Printf("Error processing order event %s for order %s: %v", msg.Type, msg.OrderID, err)
	}
}

func (c *Consumer) ProcessReview(ctx context.Context, msg domain.ReviewEvent) error {
	if !msg.AffectsRating() || msg.StoreID == uuid.Nil {
		return nil
	}
	log.Printf("Processing %s: StoreID=%s, Rating=%d", msg.Type, msg.StoreID, msg.Rating)

	snapshot, err := c.Store.UpdateStoreRating(ctx, msg.StoreID)
	if err != nil {
		return err
	}
	if err := c.Store.CacheStoreRating(ctx, snapshot); err != nil {
		return err
	}

	log.Printf("Store %s rating is now %.2f over %d reviews", msg.StoreID, snapshot.Rating, snapshot.ReviewCount)
	return nil
}

func (c *Consumer) ProcessOrderEvent(ctx context.Context, msg domain.OrderEvent) error {
	if msg.StoreID == uuid.Nil {
		return nil
	}
	dropped, err := c.Store.InvalidateRevenue(ctx, msg.StoreID)
	if err != nil {
		return err
	}
	if dropped > 0 {
		log.Printf("Dropped %d revenue cache entries for store %s after %s", dropped, msg.StoreID, msg.Type)
	}
	return nil
}
