package tests

import (
	"context"
	"strings"
	"testing"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"
	"food-marketplace/market-svc/internal/mocks"
	"food-marketplace/market-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	storeID := uuid.New()

	tests := []struct {
		name      string
		quantity  int
		note      string
		menu      func() domain.Menu
		existing  int
		wantErr   error
		wantWrite bool
	}{
		{name: "new line", quantity: 2, wantWrite: true},
		{name: "merges into existing line", quantity: 3, existing: 97, wantWrite: true},
		{name: "merge beyond limit", quantity: 4, existing: 97, wantErr: apperr.ErrValidation},
		{name: "zero quantity", quantity: 0, wantErr: apperr.ErrValidation},
		{name: "too many", quantity: 101, wantErr: apperr.ErrValidation},
		{name: "note too long", quantity: 1, note: strings.Repeat("x", 501), wantErr: apperr.ErrValidation},
		{
			name:     "unavailable menu",
			quantity: 1,
			menu: func() domain.Menu {
				m := menuOf(storeID, "Com tam", 45000)
				m.Status = domain.MenuUnavailable
				return m
			},
			wantErr: apperr.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			carts := mocks.NewCartRepository(t)
			catalog := mocks.NewCatalogRepository(t)
			svc := service.NewCartService(carts, catalog)

			menu := menuOf(storeID, "Com tam", 45000)
			if testCase.menu != nil {
				menu = testCase.menu()
			}
			cart := &domain.Cart{ID: uuid.New(), CustomerID: customerID}
			if testCase.existing > 0 {
				cart.Items = []domain.CartItem{{ID: uuid.New(), MenuID: menu.ID, Quantity: testCase.existing, StoreID: storeID}}
			}

			validLine := testCase.quantity >= 1 && testCase.quantity <= 100 && len(testCase.note) <= 500
			if validLine {
				catalog.On("GetMenu", ctx, menu.ID).Return(&menu, nil).Once()
			}
			if validLine && menu.Status == domain.MenuAvailable {
				carts.On("GetOrCreateCart", ctx, customerID).Return(cart, nil)
			}
			if testCase.wantWrite {
				carts.On("UpsertCartItem", ctx, cart.ID, menu.ID, testCase.quantity, testCase.note).Return(nil).Once()
			}

			got, err := svc.AddItem(ctx, customerID, menu.ID, testCase.quantity, testCase.note)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, got)
				carts.AssertNotCalled(t, "UpsertCartItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cart.ID, got.ID)
		})
	}
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), CustomerID: customerID}
	itemID := uuid.New()

	t.Run("update existing line", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		svc := service.NewCartService(carts, mocks.NewCatalogRepository(t))
		carts.On("GetOrCreateCart", ctx, customerID).Return(cart, nil).Twice()
		carts.On("UpdateCartItem", ctx, cart.ID, itemID, 5, "extra chili").Return(int64(1), nil).Once()

		_, err := svc.UpdateItem(ctx, customerID, itemID, 5, "extra chili")

		require.NoError(t, err)
	})

	t.Run("update line of another cart", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		svc := service.NewCartService(carts, mocks.NewCatalogRepository(t))
		carts.On("GetOrCreateCart", ctx, customerID).Return(cart, nil).Once()
		carts.On("UpdateCartItem", ctx, cart.ID, itemID, 1, "").Return(int64(0), nil).Once()

		_, err := svc.UpdateItem(ctx, customerID, itemID, 1, "")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("remove missing line", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		svc := service.NewCartService(carts, mocks.NewCatalogRepository(t))
		carts.On("GetOrCreateCart", ctx, customerID).Return(cart, nil).Once()
		carts.On("RemoveCartItem", ctx, cart.ID, itemID).Return(int64(0), nil).Once()

		_, err := svc.RemoveItem(ctx, customerID, itemID)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		svc := service.NewCartService(carts, mocks.NewCatalogRepository(t))
		carts.On("GetOrCreateCart", ctx, customerID).Return(cart, nil).Once()
		carts.On("ClearCart", ctx, cart.ID).Return(nil).Once()

		assert.NoError(t, svc.Clear(ctx, customerID))
	})
}

func TestCart_TotalAndStores(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	cart := domain.Cart{Items: []domain.CartItem{
		{StoreID: storeA, Price: decimal.NewFromInt(50000), Quantity: 2},
		{StoreID: storeB, Price: decimal.NewFromInt(30000), Quantity: 1},
		{StoreID: storeA, Price: decimal.RequireFromString("0.5"), Quantity: 3},
	}}

	assert.True(t, decimal.RequireFromString("130001.5").Equal(cart.Total()))
	assert.Equal(t, []uuid.UUID{storeA, storeB}, cart.StoreIDs())
}

func TestWishlistService(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	menu := menuOf(uuid.New(), "Banh xeo", 60000)

	t.Run("add duplicate", func(t *testing.T) {
		repo := mocks.NewWishlistRepository(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewWishlistService(repo, catalog)
		catalog.On("GetMenu", ctx, menu.ID).Return(&menu, nil).Once()
		repo.On("AddWishlist", ctx, customerID, menu.ID).Return(apperr.Conflict("menu %s is already in the wishlist", menu.ID)).Once()

		err := svc.Add(ctx, customerID, menu.ID)

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("add unknown menu", func(t *testing.T) {
		repo := mocks.NewWishlistRepository(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewWishlistService(repo, catalog)
		id := uuid.New()
		catalog.On("GetMenu", ctx, id).Return(nil, apperr.NotFound("menu %s not found", id)).Once()

		err := svc.Add(ctx, customerID, id)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		repo.AssertNotCalled(t, "AddWishlist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("toggle on", func(t *testing.T) {
		repo := mocks.NewWishlistRepository(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewWishlistService(repo, catalog)
		repo.On("InWishlist", ctx, customerID, menu.ID).Return(false, nil).Once()
		catalog.On("GetMenu", ctx, menu.ID).Return(&menu, nil).Once()
		repo.On("AddWishlist", ctx, customerID, menu.ID).Return(nil).Once()

		added, err := svc.Toggle(ctx, customerID, menu.ID)

		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("toggle off", func(t *testing.T) {
		repo := mocks.NewWishlistRepository(t)
		svc := service.NewWishlistService(repo, mocks.NewCatalogRepository(t))
		repo.On("InWishlist", ctx, customerID, menu.ID).Return(true, nil).Once()
		repo.On("RemoveWishlist", ctx, customerID, menu.ID).Return(int64(1), nil).Once()

		added, err := svc.Toggle(ctx, customerID, menu.ID)

		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("remove absent", func(t *testing.T) {
		repo := mocks.NewWishlistRepository(t)
		svc := service.NewWishlistService(repo, mocks.NewCatalogRepository(t))
		repo.On("RemoveWishlist", ctx, customerID, menu.ID).Return(int64(0), nil).Once()

		assert.ErrorIs(t, svc.Remove(ctx, customerID, menu.ID), apperr.ErrNotFound)
	})
}
