package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"food-marketplace/agg-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const ratingCacheTTL = 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func StoreRatingKey(storeID uuid.UUID) string {
	return "store:" + storeID.String()
}

// UpdateStoreRating recomputes stores.rating and stores.review_count from the current reviews. A store with no reviews goes back to 0.
func (s *Store) UpdateStoreRating(ctx context.Context, storeID uuid.UUID) (*domain.RatingSnapshot, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE stores
		SET rating = COALESCE((
			SELECT ROUND(AVG(rating::numeric), 2)
			FROM reviews
			WHERE store_id = $1
		), 0),
		review_count = (SELECT COUNT(*) FROM reviews WHERE store_id = $1),
		updated_at = NOW()
		WHERE id = $1
	`, storeID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("store %s not found", storeID)
	}

	snapshot := &domain.RatingSnapshot{StoreID: storeID}
	err = s.db.QueryRowContext(ctx, `
		SELECT s.rating::float8, s.review_count
		FROM stores s
		WHERE s.id = $1
	`, storeID).Scan(&snapshot.Rating, &snapshot.ReviewCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("store %s not found", storeID)
		}
		return nil, err
	}
	return snapshot, nil
}

func (s *Store) CacheStoreRating(ctx context.Context, snapshot *domain.RatingSnapshot) error {
	key := StoreRatingKey(snapshot.StoreID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"rating":       snapshot.Rating,
		"review_count": snapshot.ReviewCount,
		"last_updated": time.Now().Unix(),
	})
	pipe.Expire(ctx, key, ratingCacheTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateRevenue drops every cached revenue overview of the store and reports how many went.
func (s *Store) InvalidateRevenue(ctx context.Context, storeID uuid.UUID) (int, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, fmt.Sprintf("revenue:%s:*", storeID), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	deleted, err := s.rdb.Del(ctx, keys...).Result()
	return int(deleted), err
}
