package tests

import (
	"context"
	"testing"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"
	"food-marketplace/market-svc/internal/mocks"
	"food-marketplace/market-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_RegisterStore(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	tests := []struct {
		name      string
		store     *domain.Store
		mockError error
		wantErr   error
	}{
		{name: "valid store", store: &domain.Store{Name: "Pho 24", Status: domain.StoreApproved, Rating: 5}},
		{name: "blank name", store: &domain.Store{Name: "  "}, wantErr: apperr.ErrValidation},
		{name: "database error", store: &domain.Store{Name: "Pho 24"}, mockError: assert.AnError, wantErr: assert.AnError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			svc := service.NewCatalogService(repo, nil)

			if testCase.wantErr != apperr.ErrValidation {
				repo.On("CreateStore", ctx, testCase.store).Return(testCase.mockError).Once()
			}

			err := svc.RegisterStore(ctx, sellerID, testCase.store)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StorePending, testCase.store.Status)
			assert.Equal(t, sellerID, testCase.store.SellerID)
			assert.Zero(t, testCase.store.Rating)
			assert.NotEqual(t, uuid.Nil, testCase.store.ID)
		})
	}
}

func TestCatalogService_ReviewStore(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("approve pending store notifies the seller", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		notifier := mocks.NewNotifier(t)
		svc := service.NewCatalogService(repo, notifier)
		store := approvedStore(sellerID)
		store.Status = domain.StorePending

		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("SetStoreStatus", ctx, store.ID, domain.StoreApproved).Return(nil).Once()
		notifier.On("Notify", ctx, sellerID, "Store approved", "Your store Pho 24 has been approved",
			domain.NotificationSystem, mock.Anything).Return(nil).Once()

		require.NoError(t, svc.ApproveStore(ctx, store.ID))
	})

	t.Run("reject pending store", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		notifier := mocks.NewNotifier(t)
		svc := service.NewCatalogService(repo, notifier)
		store := approvedStore(sellerID)
		store.Status = domain.StorePending

		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("SetStoreStatus", ctx, store.ID, domain.StoreRejected).Return(nil).Once()
		notifier.On("Notify", ctx, sellerID, "Store rejected", mock.Anything, domain.NotificationSystem, mock.Anything).Return(nil).Once()

		require.NoError(t, svc.RejectStore(ctx, store.ID))
	})

	t.Run("already approved", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()

		err := svc.ApproveStore(ctx, store.ID)

		assert.ErrorIs(t, err, apperr.ErrInvalidState)
		repo.AssertNotCalled(t, "SetStoreStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCatalogService_GetStore(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()
	pending := approvedStore(sellerID)
	pending.Status = domain.StorePending

	tests := []struct {
		name    string
		caller  *auth.Identity
		wantErr error
	}{
		{name: "anonymous", caller: nil, wantErr: apperr.ErrNotFound},
		{name: "other seller", caller: &auth.Identity{UserID: uuid.New(), Role: auth.RoleSeller}, wantErr: apperr.ErrNotFound},
		{name: "owner", caller: &auth.Identity{UserID: sellerID, Role: auth.RoleSeller}},
		{name: "admin", caller: &auth.Identity{UserID: uuid.New(), Role: auth.RoleAdmin}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			svc := service.NewCatalogService(repo, nil)
			repo.On("GetStore", ctx, pending.ID).Return(pending, nil).Once()

			got, err := svc.GetStore(ctx, testCase.caller, pending.ID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pending.ID, got.ID)
		})
	}
}

func TestCatalogService_Menus(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("create on approved store", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		menu := &domain.Menu{StoreID: store.ID, Name: " Bun cha ", Price: decimal.NewFromInt(55000)}

		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("CreateMenu", ctx, menu).Return(nil).Once()

		require.NoError(t, svc.CreateMenu(ctx, sellerID, menu))
		assert.Equal(t, "Bun cha", menu.Name)
		assert.Equal(t, domain.MenuAvailable, menu.Status)
	})

	t.Run("non-positive price", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()

		err := svc.CreateMenu(ctx, sellerID, &domain.Menu{StoreID: store.ID, Name: "Free", Price: decimal.Zero})

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("store still pending", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		store.Status = domain.StorePending
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()

		err := svc.CreateMenu(ctx, sellerID, &domain.Menu{StoreID: store.ID, Name: "Bun cha", Price: decimal.NewFromInt(1)})

		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})

	t.Run("another seller's store", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()

		err := svc.CreateMenu(ctx, uuid.New(), &domain.Menu{StoreID: store.ID, Name: "Bun cha", Price: decimal.NewFromInt(1)})

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("public listing only shows available menus", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("ListMenus", ctx, store.ID, true).Return([]domain.Menu{}, nil).Once()

		_, err := svc.ListMenus(ctx, nil, store.ID)

		require.NoError(t, err)
	})

	t.Run("owner sees every menu", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("ListMenus", ctx, store.ID, false).Return([]domain.Menu{}, nil).Once()

		_, err := svc.ListMenus(ctx, &auth.Identity{UserID: sellerID, Role: auth.RoleSeller}, store.ID)

		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		menu := menuOf(store.ID, "Bun cha", 55000)
		repo.On("GetMenu", ctx, menu.ID).Return(&menu, nil).Once()
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("DeleteMenu", ctx, store.ID, menu.ID).Return(int64(1), nil).Once()

		require.NoError(t, svc.DeleteMenu(ctx, sellerID, menu.ID))
	})

	t.Run("set image", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		menu := menuOf(store.ID, "Bun cha", 55000)
		repo.On("GetMenu", ctx, menu.ID).Return(&menu, nil).Once()
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("SetMenuImage", ctx, menu.ID, "/uploads/menu.png").Return(nil).Once()

		require.NoError(t, svc.SetMenuImage(ctx, sellerID, menu.ID, "/uploads/menu.png"))
	})
}

func TestCatalogService_UpdateStore(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("closed store cannot be edited", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		store.Status = domain.StoreClosed
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()

		err := svc.UpdateStore(ctx, sellerID, &domain.Store{ID: store.ID, Name: "Renamed"})

		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})

	t.Run("keeps status and rating", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo, nil)
		store := approvedStore(sellerID)
		store.Rating = 4.5
		update := &domain.Store{ID: store.ID, Name: "Renamed", Status: domain.StorePending, Rating: 1}
		repo.On("GetStore", ctx, store.ID).Return(store, nil).Once()
		repo.On("UpdateStore", ctx, update).Return(nil).Once()

		require.NoError(t, svc.UpdateStore(ctx, sellerID, update))
		assert.Equal(t, domain.StoreApproved, update.Status)
		assert.Equal(t, 4.5, update.Rating)
	})
}
