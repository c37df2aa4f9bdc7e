package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/rate-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
		customer_id UUID NOT NULL,
		store_id UUID NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		menu_id UUID REFERENCES menus(id) ON DELETE SET NULL,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		image_urls TEXT[] NOT NULL DEFAULT '{}',
		response TEXT NOT NULL DEFAULT '',
		responded_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_store ON reviews (store_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_menu ON reviews (menu_id, created_at DESC)`,
}

// EnsureSchema expects the marketplace tables to exist already.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) GetOrderForReview(ctx context.Context, orderID uuid.UUID) (*domain.OrderRef, error) {
	var order domain.OrderRef
	var menuIDs pq.StringArray
	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.customer_id, o.store_id, o.status,
			COALESCE(array_agg(od.menu_id::text) FILTER (WHERE od.menu_id IS NOT NULL), '{}')
		FROM orders o
		LEFT JOIN order_details od ON od.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.id`, orderID).Scan(&order.ID, &order.CustomerID, &order.StoreID, &order.Status, &menuIDs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("order %s not found", orderID)
		}
		return nil, err
	}

	for _, raw := range menuIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("order %s detail menu id %q: %w", orderID, raw, err)
		}
		order.MenuIDs = append(order.MenuIDs, id)
	}
	return &order, nil
}

func (r *PostgresRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reviews WHERE order_id = $1)", orderID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (id, order_id, customer_id, store_id, menu_id, rating, comment, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		review.ID, review.OrderID, review.CustomerID, review.StoreID, review.MenuID, review.Rating,
		review.Comment, pq.Array(review.ImageURLs),
	).Scan(&review.CreatedAt, &review.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.Conflict("order %s has already been reviewed", review.OrderID)
	}
	return err
}

const reviewColumns = `id, order_id, customer_id, store_id, menu_id, rating, comment, image_urls,
	response, responded_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var review domain.Review
	var menuID uuid.NullUUID
	var respondedAt sql.NullTime
	var images pq.StringArray
	if err := row.Scan(&review.ID, &review.OrderID, &review.CustomerID, &review.StoreID, &menuID,
		&review.Rating, &review.Comment, &images, &review.Response, &respondedAt,
		&review.CreatedAt, &review.UpdatedAt); err != nil {
		return nil, err
	}
	if menuID.Valid {
		id := menuID.UUID
		review.MenuID = &id
	}
	if respondedAt.Valid {
		at := respondedAt.Time
		review.RespondedAt = &at
	}
	review.ImageURLs = []string(images)
	if review.ImageURLs == nil {
		review.ImageURLs = []string{}
	}
	return &review, nil
}

func (r *PostgresRepository) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, err := scanReview(r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("review %s not found", id)
	}
	return review, err
}

func (r *PostgresRepository) GetReviewByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error) {
	review, err := scanReview(r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE order_id = $1", orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("no review for order %s", orderID)
	}
	return review, err
}

func (r *PostgresRepository) UpdateReview(ctx context.Context, review *domain.Review) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE reviews
		SET rating = $1, comment = $2, image_urls = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`,
		review.Rating, review.Comment, pq.Array(review.ImageURLs), review.ID,
	).Scan(&review.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("review %s not found", review.ID)
	}
	return err
}

func (r *PostgresRepository) SetResponse(ctx context.Context, id uuid.UUID, text string, at time.Time) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE reviews SET response = $1, responded_at = $2 WHERE id = $3", text, at, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("review %s not found", id)
	}
	return nil
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("review %s not found", id)
	}
	return nil
}

func (r *PostgresRepository) ListStoreReviews(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	return r.queryReviews(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE store_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, storeID, limit, offset)
}

func (r *PostgresRepository) ListMenuReviews(ctx context.Context, menuID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	return r.queryReviews(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE menu_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, menuID, limit, offset)
}

func (r *PostgresRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) RatingDistribution(ctx context.Context, storeID uuid.UUID) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rating, COUNT(*) as count
		FROM reviews
		WHERE store_id = $1
		GROUP BY rating
		ORDER BY rating
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		distribution[fmt.Sprintf("%d", rating)] = count
	}
	return distribution, rows.Err()
}

func (r *PostgresRepository) GetStoreOwner(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error) {
	var sellerID uuid.UUID
	err := r.DB.QueryRowContext(ctx, "SELECT seller_id FROM stores WHERE id = $1", storeID).Scan(&sellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, apperr.NotFound("store %s not found", storeID)
	}
	return sellerID, err
}
