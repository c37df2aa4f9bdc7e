package storage

import (
	"context"
	"database/sql"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

// CreateOrder writes the order and its details in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, customer_id, store_id, total_price, status, payment_method, payment_status,
			delivery_address, delivery_latitude, delivery_longitude, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		order.ID, order.CustomerID, order.StoreID, order.TotalPrice, order.Status, order.PaymentMethod,
		order.PaymentStatus, order.DeliveryAddress, order.DeliveryLatitude, order.DeliveryLongitude, order.Note,
	).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for _, detail := range order.Details {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_details (id, order_id, menu_id, menu_name, quantity, price, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			detail.ID, order.ID, detail.MenuID, detail.MenuName, detail.Quantity, detail.Price, detail.Note); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `
	o.id, o.customer_id, o.store_id, s.name, s.seller_id, o.total_price, o.status, o.payment_method,
	o.payment_status, o.delivery_address, o.delivery_latitude, o.delivery_longitude, o.note,
	o.reject_reason, o.created_at, o.updated_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var lat, lng sql.NullFloat64
	if err := row.Scan(&order.ID, &order.CustomerID, &order.StoreID, &order.StoreName, &order.SellerID,
		&order.TotalPrice, &order.Status, &order.PaymentMethod, &order.PaymentStatus, &order.DeliveryAddress,
		&lat, &lng, &order.Note, &order.RejectReason, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}
	order.DeliveryLatitude = nullFloatPtr(lat)
	order.DeliveryLongitude = nullFloatPtr(lng)
	order.Details = []domain.OrderDetail{}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "order %s not found", id)
	}

	orders := []domain.Order{*order}
	if err := r.attachDetails(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *PostgresRepository) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC`, customerID)
}

func (r *PostgresRepository) ListStoreOrders(ctx context.Context, storeID uuid.UUID, status domain.OrderStatus) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.store_id = $1`
	args := []interface{}{storeID}
	if status != "" {
		query += " AND o.status = $2"
		args = append(args, status)
	}
	query += " ORDER BY o.created_at DESC"
	return r.queryOrders(ctx, query, args...)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachDetails(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PostgresRepository) attachDetails(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	index := make(map[uuid.UUID]int, len(orders))
	ids := make([]uuid.UUID, len(orders))
	for i, order := range orders {
		index[order.ID] = i
		ids[i] = order.ID
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_id, menu_name, quantity, price, note
		FROM order_details
		WHERE order_id = ANY($1)
		ORDER BY menu_name`, uuidArray(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var detail domain.OrderDetail
		var menuID uuid.NullUUID
		if err := rows.Scan(&detail.ID, &detail.OrderID, &menuID, &detail.MenuName, &detail.Quantity, &detail.Price, &detail.Note); err != nil {
			return err
		}
		detail.MenuID = menuID.UUID
		i := index[detail.OrderID]
		orders[i].Details = append(orders[i].Details, detail)
	}
	return rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, reason string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
			reject_reason = CASE WHEN $2::text = '' THEN reject_reason ELSE $2::text END,
			updated_at = NOW()
		WHERE id = $3`, status, reason, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("order %s not found", id)
	}
	return nil
}

func (r *PostgresRepository) UpdatePayment(ctx context.Context, id uuid.UUID, paymentStatus domain.PaymentStatus, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = $1, status = $2, updated_at = NOW()
		WHERE id = $3`, paymentStatus, status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("order %s not found", id)
	}
	return nil
}
