package storage

import (
	"context"
	"errors"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GetOrCreateCart creates the customer's cart on first access and loads its lines.
func (r *PostgresRepository) GetOrCreateCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error) {
	cart := &domain.Cart{CustomerID: customerID, Items: []domain.CartItem{}}
	if err := r.DB.QueryRowContext(ctx, `
		INSERT INTO carts (id, customer_id) VALUES ($1, $2)
		ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		RETURNING id`, uuid.New(), customerID).Scan(&cart.ID); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT ci.id, ci.menu_id, ci.quantity, ci.note, m.name, m.price, m.store_id
		FROM cart_items ci
		JOIN menus m ON m.id = ci.menu_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := domain.CartItem{CartID: cart.ID}
		if err := rows.Scan(&item.ID, &item.MenuID, &item.Quantity, &item.Note, &item.MenuName, &item.Price, &item.StoreID); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

func (r *PostgresRepository) UpsertCartItem(ctx context.Context, cartID, menuID uuid.UUID, quantity int, note string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO cart_items (id, cart_id, menu_id, quantity, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, menu_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
			note = CASE WHEN EXCLUDED.note = '' THEN cart_items.note ELSE EXCLUDED.note END`,
		uuid.New(), cartID, menuID, quantity, note)
	return err
}

func (r *PostgresRepository) UpdateCartItem(ctx context.Context, cartID, itemID uuid.UUID, quantity int, note string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE cart_items SET quantity = $1, note = $2 WHERE id = $3 AND cart_id = $4",
		quantity, note, itemID, cartID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) RemoveCartItem(ctx context.Context, cartID, itemID uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE id = $1 AND cart_id = $2", itemID, cartID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID)
	return err
}

func (r *PostgresRepository) AddWishlist(ctx context.Context, customerID, menuID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO wishlists (customer_id, menu_id) VALUES ($1, $2)", customerID, menuID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.Conflict("menu %s is already in the wishlist", menuID)
	}
	return err
}

func (r *PostgresRepository) RemoveWishlist(ctx context.Context, customerID, menuID uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM wishlists WHERE customer_id = $1 AND menu_id = $2", customerID, menuID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListWishlist(ctx context.Context, customerID uuid.UUID) ([]domain.WishlistItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.id, m.name, m.price, m.store_id, m.image_url, w.created_at
		FROM wishlists w
		JOIN menus m ON m.id = w.menu_id
		WHERE w.customer_id = $1
		ORDER BY w.created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.WishlistItem{}
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.MenuID, &item.MenuName, &item.Price, &item.StoreID, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) InWishlist(ctx context.Context, customerID, menuID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM wishlists WHERE customer_id = $1 AND menu_id = $2)`,
		customerID, menuID).Scan(&exists)
	return exists, err
}
