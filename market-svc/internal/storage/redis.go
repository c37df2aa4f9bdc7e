package storage

import (
	"context"
	"encoding/json"

	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisPusher publishes addressed real-time messages on a per-user channel that
// the websocket edge subscribes to.
type RedisPusher struct {
	Client *redis.Client
}

func NewRedisPusher(client *redis.Client) *RedisPusher {
	return &RedisPusher{Client: client}
}

func (p *RedisPusher) Channel(userID uuid.UUID) string {
	return "push:user:" + userID.String()
}

func (p *RedisPusher) Push(ctx context.Context, userID uuid.UUID, msg domain.PushMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Client.Publish(ctx, p.Channel(userID), payload).Err()
}
