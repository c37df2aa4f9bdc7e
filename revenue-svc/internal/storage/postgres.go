package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/revenue-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const completedStatus = "Completed"

// PostgresRepository reads the marketplace tables owned by market-svc. It never writes.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetStoreOwner(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error) {
	var sellerID uuid.UUID
	err := r.DB.QueryRowContext(ctx, `SELECT seller_id FROM stores WHERE id = $1`, storeID).Scan(&sellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, apperr.NotFound("store %s not found", storeID)
		}
		return uuid.Nil, err
	}
	return sellerID, nil
}

// CompletedOrders returns the store's completed orders created within [start, end], newest first,
// each with its line items.
func (r *PostgresRepository) CompletedOrders(ctx context.Context, storeID uuid.UUID, start, end time.Time) ([]domain.CompletedOrder, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.total_price, o.payment_method, o.created_at,
			od.menu_name, COALESCE(c.name, ''), od.quantity, od.price
		FROM orders o
		LEFT JOIN order_details od ON od.order_id = o.id
		LEFT JOIN menus m ON m.id = od.menu_id
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE o.store_id = $1 AND o.status = $2 AND o.created_at BETWEEN $3 AND $4
		ORDER BY o.created_at DESC, o.id, od.menu_name`, storeID, completedStatus, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.CompletedOrder{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			order    domain.CompletedOrder
			menuName sql.NullString
			category string
			quantity sql.NullInt64
			price    decimal.NullDecimal
		)
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.TotalPrice, &order.PaymentMethod, &order.CreatedAt,
			&menuName, &category, &quantity, &price); err != nil {
			return nil, err
		}

		pos, seen := index[order.ID]
		if !seen {
			order.CreatedAt = order.CreatedAt.UTC()
			orders = append(orders, order)
			pos = len(orders) - 1
			index[order.ID] = pos
		}
		if !menuName.Valid {
			continue
		}
		if category == "" {
			category = domain.UncategorizedLabel
		}
		orders[pos].Items = append(orders[pos].Items, domain.OrderItem{
			MenuName:     menuName.String,
			CategoryName: category,
			Quantity:     int(quantity.Int64),
			Price:        price.Decimal,
		})
	}
	return orders, rows.Err()
}
