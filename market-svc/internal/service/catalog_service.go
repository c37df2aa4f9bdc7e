package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

type CatalogService struct {
	repo     CatalogRepository
	notifier Notifier
}

func NewCatalogService(repo CatalogRepository, notifier Notifier) *CatalogService {
	return &CatalogService{repo: repo, notifier: notifier}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return apperr.Validation("category name is required")
	}
	category.ID = uuid.New()
	return s.repo.CreateCategory(ctx, category)
}

func (s *CatalogService) RegisterStore(ctx context.Context, sellerID uuid.UUID, store *domain.Store) error {
	store.Name = strings.TrimSpace(store.Name)
	if store.Name == "" {
		return apperr.Validation("store name is required")
	}
	store.ID = uuid.New()
	store.SellerID = sellerID
	store.Status = domain.StorePending
	store.Rating = 0
	return s.repo.CreateStore(ctx, store)
}

func (s *CatalogService) ListStores(ctx context.Context, categoryID *uuid.UUID) ([]domain.Store, error) {
	return s.repo.ListStores(ctx, domain.StoreFilter{Status: domain.StoreApproved, CategoryID: categoryID})
}

// GetStore hides stores that are not approved from everyone but their seller and admins.
func (s *CatalogService) GetStore(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*domain.Store, error) {
	store, err := s.repo.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if store.Status == domain.StoreApproved {
		return store, nil
	}
	if caller != nil && (caller.Is(auth.RoleAdmin) || caller.UserID == store.SellerID) {
		return store, nil
	}
	return nil, apperr.NotFound("store %s not found", id)
}

func (s *CatalogService) MyStores(ctx context.Context, sellerID uuid.UUID) ([]domain.Store, error) {
	return s.repo.ListStores(ctx, domain.StoreFilter{SellerID: &sellerID})
}

func (s *CatalogService) ownedStore(ctx context.Context, sellerID, storeID uuid.UUID) (*domain.Store, error) {
	store, err := s.repo.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.SellerID != sellerID {
		return nil, apperr.Forbidden("store %s belongs to another seller", storeID)
	}
	return store, nil
}

func (s *CatalogService) UpdateStore(ctx context.Context, sellerID uuid.UUID, store *domain.Store) error {
	existing, err := s.ownedStore(ctx, sellerID, store.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StoreApproved {
		return apperr.InvalidState("store is %s and cannot be edited", existing.Status)
	}
	if strings.TrimSpace(store.Name) == "" {
		return apperr.Validation("store name is required")
	}
	store.SellerID = existing.SellerID
	store.Status = existing.Status
	store.Rating = existing.Rating
	return s.repo.UpdateStore(ctx, store)
}

func (s *CatalogService) CloseStore(ctx context.Context, sellerID, storeID uuid.UUID) error {
	if _, err := s.ownedStore(ctx, sellerID, storeID); err != nil {
		return err
	}
	return s.repo.SetStoreStatus(ctx, storeID, domain.StoreClosed)
}

func (s *CatalogService) ListPendingStores(ctx context.Context) ([]domain.Store, error) {
	return s.repo.ListStores(ctx, domain.StoreFilter{Status: domain.StorePending})
}

func (s *CatalogService) ApproveStore(ctx context.Context, storeID uuid.UUID) error {
	return s.review(ctx, storeID, domain.StoreApproved)
}

func (s *CatalogService) RejectStore(ctx context.Context, storeID uuid.UUID) error {
	return s.review(ctx, storeID, domain.StoreRejected)
}

func (s *CatalogService) review(ctx context.Context, storeID uuid.UUID, decision domain.StoreStatus) error {
	store, err := s.repo.GetStore(ctx, storeID)
	if err != nil {
		return err
	}
	if store.Status != domain.StorePending {
		return apperr.InvalidState("store is already %s", store.Status)
	}
	if err := s.repo.SetStoreStatus(ctx, storeID, decision); err != nil {
		return err
	}

	if s.notifier != nil {
		title := "Store approved"
		message := fmt.Sprintf("Your store %s has been approved", store.Name)
		if decision == domain.StoreRejected {
			title = "Store rejected"
			message = fmt.Sprintf("Your store %s has been rejected", store.Name)
		}
		if err := s.notifier.Notify(ctx, store.SellerID, title, message, domain.NotificationSystem,
			map[string]string{"storeId": storeID.String()}); err != nil {
			log.Printf("[CATALOG] notify seller %s: %v", store.SellerID, err)
		}
	}
	return nil
}

func (s *CatalogService) CreateMenu(ctx context.Context, sellerID uuid.UUID, menu *domain.Menu) error {
	store, err := s.ownedStore(ctx, sellerID, menu.StoreID)
	if err != nil {
		return err
	}
	if store.Status != domain.StoreApproved {
		return apperr.InvalidState("store is %s and cannot list menus", store.Status)
	}
	if err := validateMenu(menu); err != nil {
		return err
	}
	if menu.Status == "" {
		menu.Status = domain.MenuAvailable
	}
	menu.ID = uuid.New()
	return s.repo.CreateMenu(ctx, menu)
}

func (s *CatalogService) GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	return s.repo.GetMenu(ctx, id)
}

func (s *CatalogService) ListMenus(ctx context.Context, caller *auth.Identity, storeID uuid.UUID) ([]domain.Menu, error) {
	store, err := s.GetStore(ctx, caller, storeID)
	if err != nil {
		return nil, err
	}
	owner := caller != nil && caller.UserID == store.SellerID
	return s.repo.ListMenus(ctx, storeID, !owner)
}

func (s *CatalogService) UpdateMenu(ctx context.Context, sellerID uuid.UUID, menu *domain.Menu) error {
	existing, err := s.repo.GetMenu(ctx, menu.ID)
	if err != nil {
		return err
	}
	store, err := s.ownedStore(ctx, sellerID, existing.StoreID)
	if err != nil {
		return err
	}
	if store.Status != domain.StoreApproved {
		return apperr.InvalidState("store is %s and cannot edit menus", store.Status)
	}
	if err := validateMenu(menu); err != nil {
		return err
	}
	if menu.Status == "" {
		menu.Status = existing.Status
	}
	menu.StoreID = existing.StoreID
	return s.repo.UpdateMenu(ctx, menu)
}

func (s *CatalogService) DeleteMenu(ctx context.Context, sellerID, menuID uuid.UUID) error {
	existing, err := s.repo.GetMenu(ctx, menuID)
	if err != nil {
		return err
	}
	if _, err := s.ownedStore(ctx, sellerID, existing.StoreID); err != nil {
		return err
	}
	rows, err := s.repo.DeleteMenu(ctx, existing.StoreID, menuID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("menu %s not found", menuID)
	}
	return nil
}

func validateMenu(menu *domain.Menu) error {
	menu.Name = strings.TrimSpace(menu.Name)
	if menu.Name == "" {
		return apperr.Validation("menu name is required")
	}
	if !menu.Price.IsPositive() {
		return apperr.Validation("menu price must be positive")
	}
	if menu.Status != "" {
		status, err := domain.ParseMenuStatus(string(menu.Status))
		if err != nil {
			return err
		}
		menu.Status = status
	}
	return nil
}

func (s *CatalogService) SetStoreImage(ctx context.Context, sellerID, storeID uuid.UUID, imageURL string) error {
	if _, err := s.ownedStore(ctx, sellerID, storeID); err != nil {
		return err
	}
	return s.repo.SetStoreImage(ctx, storeID, imageURL)
}

func (s *CatalogService) SetMenuImage(ctx context.Context, sellerID, menuID uuid.UUID, imageURL string) error {
	menu, err := s.repo.GetMenu(ctx, menuID)
	if err != nil {
		return err
	}
	if _, err := s.ownedStore(ctx, sellerID, menu.StoreID); err != nil {
		return err
	}
	return s.repo.SetMenuImage(ctx, menuID, imageURL)
}
