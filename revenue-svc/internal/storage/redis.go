package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"food-marketplace/revenue-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCache memoizes overviews per store and period. agg-svc drops a store's keys when one
// of its orders changes, so the TTL only bounds staleness for missed events.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func OverviewKey(storeID uuid.UUID, period domain.Period) string {
	return fmt.Sprintf("revenue:%s:%s:%s", storeID, period.Name, period.Start.Format("2006-01-02"))
}

func (c *RedisCache) GetOverview(ctx context.Context, storeID uuid.UUID, period domain.Period) (*domain.Overview, bool, error) {
	raw, err := c.Client.Get(ctx, OverviewKey(storeID, period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var overview domain.Overview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return nil, false, err
	}
	return &overview, true, nil
}

func (c *RedisCache) SetOverview(ctx context.Context, storeID uuid.UUID, period domain.Period, overview *domain.Overview) error {
	raw, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, OverviewKey(storeID, period), raw, c.TTL).Err()
}
