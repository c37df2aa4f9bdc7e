package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionRevoked = errors.New("session revoked")

type SessionStore interface {
	Current(ctx context.Context, userID uuid.UUID) (string, error)
	Rotate(ctx context.Context, userID uuid.UUID) (string, error)
	Validate(ctx context.Context, userID uuid.UUID, sessionID string) error
}

// RedisSessionStore keeps the single live session id of every user. Replacing it
// revokes all tokens minted for the previous one.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) key(userID uuid.UUID) string {
	return "session:" + userID.String()
}

func (s *RedisSessionStore) Current(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID, err := s.Client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionRevoked
	}
	return sessionID, err
}

func (s *RedisSessionStore) Rotate(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.NewString()
	if err := s.Client.Set(ctx, s.key(userID), sessionID, s.TTL).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *RedisSessionStore) Validate(ctx context.Context, userID uuid.UUID, sessionID string) error {
	current, err := s.Current(ctx, userID)
	if err != nil {
		return err
	}
	if sessionID == "" || current != sessionID {
		return ErrSessionRevoked
	}
	return nil
}

var _ SessionStore = (*RedisSessionStore)(nil)
