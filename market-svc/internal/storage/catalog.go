package storage

import (
	"context"
	"strconv"
	"strings"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (id, name, description) VALUES ($1, $2, $3) RETURNING created_at",
		category.ID, category.Name, category.Description,
	).Scan(&category.CreatedAt)
}

const storeColumns = `
	s.id, s.seller_id, s.category_id, COALESCE(c.name, ''), s.name, s.address, s.description,
	s.latitude, s.longitude, s.image_url, s.status, s.rating, s.created_at, s.updated_at`

// storeDest lists scan targets in storeColumns order.
func storeDest(store *domain.Store, categoryID *uuid.NullUUID) []any {
	return []any{&store.ID, &store.SellerID, categoryID, &store.CategoryName, &store.Name,
		&store.Address, &store.Description, &store.Latitude, &store.Longitude, &store.ImageURL,
		&store.Status, &store.Rating, &store.CreatedAt, &store.UpdatedAt}
}

func scanStore(row rowScanner) (*domain.Store, error) {
	var store domain.Store
	var categoryID uuid.NullUUID
	if err := row.Scan(storeDest(&store, &categoryID)...); err != nil {
		return nil, err
	}
	store.CategoryID = nullUUIDPtr(categoryID)
	return &store, nil
}

func (r *PostgresRepository) CreateStore(ctx context.Context, store *domain.Store) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO stores (id, seller_id, category_id, name, address, description, latitude, longitude, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		store.ID, store.SellerID, store.CategoryID, store.Name, store.Address, store.Description,
		store.Latitude, store.Longitude, store.ImageURL, store.Status,
	).Scan(&store.CreatedAt, &store.UpdatedAt)
}

func (r *PostgresRepository) GetStore(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	store, err := scanStore(r.DB.QueryRowContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores s
		LEFT JOIN categories c ON c.id = s.category_id
		WHERE s.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "store %s not found", id)
	}
	return store, nil
}

func (r *PostgresRepository) ListStores(ctx context.Context, filter domain.StoreFilter) ([]domain.Store, error) {
	var where []string
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, "s.status = $"+strconv.Itoa(len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, "s.category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		where = append(where, "s.seller_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + storeColumns + `
		FROM stores s
		LEFT JOIN categories c ON c.id = s.category_id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY s.rating DESC, s.created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []domain.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, *store)
	}
	return stores, rows.Err()
}

func (r *PostgresRepository) UpdateStore(ctx context.Context, store *domain.Store) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE stores
		SET name = $1, address = $2, description = $3, latitude = $4, longitude = $5,
			image_url = $6, category_id = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at`,
		store.Name, store.Address, store.Description, store.Latitude, store.Longitude,
		store.ImageURL, store.CategoryID, store.ID,
	).Scan(&store.CreatedAt, &store.UpdatedAt)
	return notFound(err, "store %s not found", store.ID)
}

func (r *PostgresRepository) SetStoreStatus(ctx context.Context, id uuid.UUID, status domain.StoreStatus) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE stores SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("store %s not found", id)
	}
	return nil
}

const menuColumns = `
	m.id, m.store_id, m.category_id, COALESCE(c.name, ''), m.name, m.description, m.price,
	m.image_url, m.status, m.created_at, m.updated_at`

func menuDest(menu *domain.Menu, categoryID *uuid.NullUUID) []any {
	return []any{&menu.ID, &menu.StoreID, categoryID, &menu.CategoryName, &menu.Name,
		&menu.Description, &menu.Price, &menu.ImageURL, &menu.Status, &menu.CreatedAt, &menu.UpdatedAt}
}

func scanMenu(row rowScanner) (*domain.Menu, error) {
	var menu domain.Menu
	var categoryID uuid.NullUUID
	if err := row.Scan(menuDest(&menu, &categoryID)...); err != nil {
		return nil, err
	}
	menu.CategoryID = nullUUIDPtr(categoryID)
	return &menu, nil
}

func (r *PostgresRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menus (id, store_id, category_id, name, description, price, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		menu.ID, menu.StoreID, menu.CategoryID, menu.Name, menu.Description, menu.Price, menu.ImageURL, menu.Status,
	).Scan(&menu.CreatedAt, &menu.UpdatedAt)
}

func (r *PostgresRepository) GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	menu, err := scanMenu(r.DB.QueryRowContext(ctx, `
		SELECT `+menuColumns+`
		FROM menus m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "menu %s not found", id)
	}
	return menu, nil
}

func (r *PostgresRepository) GetMenusByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Menu, error) {
	return r.queryMenus(ctx, `
		SELECT `+menuColumns+`
		FROM menus m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.id = ANY($1)`, uuidArray(ids))
}

func (r *PostgresRepository) ListMenus(ctx context.Context, storeID uuid.UUID, onlyAvailable bool) ([]domain.Menu, error) {
	query := `
		SELECT ` + menuColumns + `
		FROM menus m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.store_id = $1`
	args := []interface{}{storeID}
	if onlyAvailable {
		query += " AND m.status = $2"
		args = append(args, domain.MenuAvailable)
	}
	query += " ORDER BY m.name"
	return r.queryMenus(ctx, query, args...)
}

func (r *PostgresRepository) queryMenus(ctx context.Context, query string, args ...interface{}) ([]domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *menu)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menus
		SET name = $1, description = $2, price = $3, image_url = $4, status = $5, category_id = $6, updated_at = NOW()
		WHERE id = $7 AND store_id = $8
		RETURNING created_at, updated_at`,
		menu.Name, menu.Description, menu.Price, menu.ImageURL, menu.Status, menu.CategoryID, menu.ID, menu.StoreID,
	).Scan(&menu.CreatedAt, &menu.UpdatedAt)
	return notFound(err, "menu %s not found", menu.ID)
}

func (r *PostgresRepository) DeleteMenu(ctx context.Context, storeID, menuID uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menus WHERE id = $1 AND store_id = $2", menuID, storeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetStoreImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE stores SET image_url = $1, updated_at = NOW() WHERE id = $2", imageURL, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("store %s not found", id)
	}
	return nil
}

func (r *PostgresRepository) SetMenuImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE menus SET image_url = $1, updated_at = NOW() WHERE id = $2", imageURL, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperr.NotFound("menu %s not found", id)
	}
	return nil
}
