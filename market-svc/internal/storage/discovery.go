package storage

import (
	"context"
	"strconv"
	"strings"

	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains-match ILIKE pattern with the wildcards in term taken literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type conditions struct {
	where []string
	args  []interface{}
}

// add appends a clause whose single placeholder is written as ?.
func (c *conditions) add(clause string, arg interface{}) {
	c.args = append(c.args, arg)
	c.where = append(c.where, strings.ReplaceAll(clause, "?", "$"+strconv.Itoa(len(c.args))))
}

func (c *conditions) sql() string {
	return "WHERE " + strings.Join(c.where, " AND ")
}

func (r *PostgresRepository) SearchStores(ctx context.Context, q domain.StoreSearch) ([]domain.StoreResult, error) {
	var c conditions
	c.add("s.status = ?", domain.StoreApproved)
	if term := strings.TrimSpace(q.Term); term != "" {
		c.add("(s.name ILIKE ? OR s.address ILIKE ? OR s.description ILIKE ?)", likePattern(term))
	}
	if q.CategoryID != nil {
		c.add("s.category_id = ?", *q.CategoryID)
	}
	if q.MinRating != nil {
		c.add("s.rating >= ?", *q.MinRating)
	}
	if q.MaxRating != nil {
		c.add("s.rating <= ?", *q.MaxRating)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+storeColumns+`, s.review_count,
			(SELECT COUNT(*) FROM orders o WHERE o.store_id = s.id)
		FROM stores s
		LEFT JOIN categories c ON c.id = s.category_id
		`+c.sql(), c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.StoreResult{}
	for rows.Next() {
		var result domain.StoreResult
		var categoryID uuid.NullUUID
		dest := append(storeDest(&result.Store, &categoryID), &result.ReviewCount, &result.OrderCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result.CategoryID = nullUUIDPtr(categoryID)
		results = append(results, result)
	}
	return results, rows.Err()
}

func (r *PostgresRepository) SearchMenus(ctx context.Context, q domain.MenuSearch) ([]domain.MenuResult, error) {
	var c conditions
	c.add("m.status = ?", domain.MenuAvailable)
	c.add("s.status = ?", domain.StoreApproved)
	if term := strings.TrimSpace(q.Term); term != "" {
		c.add("(m.name ILIKE ? OR m.description ILIKE ?)", likePattern(term))
	}
	if q.CategoryID != nil {
		c.add("m.category_id = ?", *q.CategoryID)
	}
	if q.StoreID != nil {
		c.add("m.store_id = ?", *q.StoreID)
	}
	if q.MinPrice != nil {
		c.add("m.price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		c.add("m.price <= ?", *q.MaxPrice)
	}
	if q.MinRating != nil {
		c.add("s.rating >= ?", *q.MinRating)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+`, s.name, s.rating, s.review_count,
			COALESCE((SELECT SUM(d.quantity) FROM order_details d WHERE d.menu_id = m.id), 0)
		FROM menus m
		JOIN stores s ON s.id = m.store_id
		LEFT JOIN categories c ON c.id = m.category_id
		`+c.sql(), c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.MenuResult{}
	for rows.Next() {
		var result domain.MenuResult
		var categoryID uuid.NullUUID
		dest := append(menuDest(&result.Menu, &categoryID),
			&result.StoreName, &result.StoreRating, &result.StoreReviewCount, &result.OrderCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result.CategoryID = nullUUIDPtr(categoryID)
		results = append(results, result)
	}
	return results, rows.Err()
}

// SuggestNames returns store, menu and category names containing term, in that source order.
// Each source contributes at most limit names; duplicates are left to the caller.
func (r *PostgresRepository) SuggestNames(ctx context.Context, term string, limit int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name FROM (
			(SELECT s.name, 1 AS source FROM stores s
				WHERE s.status = $1 AND s.name ILIKE $2 ORDER BY s.name LIMIT $4)
			UNION ALL
			(SELECT m.name, 2 AS source FROM menus m JOIN stores s ON s.id = m.store_id
				WHERE m.status = $3 AND s.status = $1 AND m.name ILIKE $2 ORDER BY m.name LIMIT $4)
			UNION ALL
			(SELECT c.name, 3 AS source FROM categories c
				WHERE c.name ILIKE $2 ORDER BY c.name LIMIT $4)
		) AS suggestions
		ORDER BY source, name`,
		domain.StoreApproved, likePattern(term), domain.MenuAvailable, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(DISTINCT customer_id) FROM orders),
			(SELECT COUNT(DISTINCT seller_id) FROM stores),
			(SELECT COUNT(*) FROM stores),
			(SELECT COUNT(*) FROM stores WHERE status = $1),
			(SELECT COUNT(*) FROM menus),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status = $2)`,
		domain.StorePending, domain.OrderCompleted,
	).Scan(&stats.Customers, &stats.Sellers, &stats.Stores, &stats.PendingStores,
		&stats.Menus, &stats.Orders, &stats.Revenue)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
