package mocks

import (
	context "context"

	domain "food-marketplace/market-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// CatalogRepository is a mock type for the CatalogRepository type
type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

func (_m *CatalogRepository) CreateStore(ctx context.Context, store *domain.Store) error {
	ret := _m.Called(ctx, store)
	return ret.Error(0)
}

func (_m *CatalogRepository) GetStore(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Store
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Store)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListStores(ctx context.Context, filter domain.StoreFilter) ([]domain.Store, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.Store
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Store)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) UpdateStore(ctx context.Context, store *domain.Store) error {
	ret := _m.Called(ctx, store)
	return ret.Error(0)
}

func (_m *CatalogRepository) SetStoreStatus(ctx context.Context, id uuid.UUID, status domain.StoreStatus) error {
	ret := _m.Called(ctx, id, status)
	return ret.Error(0)
}

func (_m *CatalogRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	ret := _m.Called(ctx, menu)
	return ret.Error(0)
}

func (_m *CatalogRepository) GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetMenusByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Menu, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListMenus(ctx context.Context, storeID uuid.UUID, onlyAvailable bool) ([]domain.Menu, error) {
	ret := _m.Called(ctx, storeID, onlyAvailable)
	var r0 []domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	ret := _m.Called(ctx, menu)
	return ret.Error(0)
}

func (_m *CatalogRepository) DeleteMenu(ctx context.Context, storeID, menuID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, storeID, menuID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *CatalogRepository) SetStoreImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	ret := _m.Called(ctx, id, imageURL)
	return ret.Error(0)
}

func (_m *CatalogRepository) SetMenuImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	ret := _m.Called(ctx, id, imageURL)
	return ret.Error(0)
}

// NewCatalogRepository creates a new instance of CatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
