package service

import (
	"context"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	MaxCartQuantity = 100
	MaxNoteLength   = 500
)

type CartService struct {
	carts   CartRepository
	catalog CatalogRepository
}

func NewCartService(carts CartRepository, catalog CatalogRepository) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

func validateLine(quantity int, note string) error {
	if quantity < 1 || quantity > MaxCartQuantity {
		return apperr.Validation("quantity must be between 1 and %d", MaxCartQuantity)
	}
	if len([]rune(note)) > MaxNoteLength {
		return apperr.Validation("note must be at most %d characters", MaxNoteLength)
	}
	return nil
}

func (s *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error) {
	return s.carts.GetOrCreateCart(ctx, customerID)
}

// AddItem merges into an existing line for the same menu.
func (s *CartService) AddItem(ctx context.Context, customerID, menuID uuid.UUID, quantity int, note string) (*domain.Cart, error) {
	if err := validateLine(quantity, note); err != nil {
		return nil, err
	}

	menu, err := s.catalog.GetMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if menu.Status != domain.MenuAvailable {
		return nil, apperr.Validation("menu %s is not available", menu.Name)
	}

	cart, err := s.carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for _, item := range cart.Items {
		if item.MenuID == menuID && item.Quantity+quantity > MaxCartQuantity {
			return nil, apperr.Validation("quantity must be between 1 and %d", MaxCartQuantity)
		}
	}

	if err := s.carts.UpsertCartItem(ctx, cart.ID, menuID, quantity, note); err != nil {
		return nil, err
	}
	return s.carts.GetOrCreateCart(ctx, customerID)
}

func (s *CartService) UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, quantity int, note string) (*domain.Cart, error) {
	if err := validateLine(quantity, note); err != nil {
		return nil, err
	}
	cart, err := s.carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	rows, err := s.carts.UpdateCartItem(ctx, cart.ID, itemID, quantity, note)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.NotFound("cart item %s not found", itemID)
	}
	return s.carts.GetOrCreateCart(ctx, customerID)
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	rows, err := s.carts.RemoveCartItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.NotFound("cart item %s not found", itemID)
	}
	return s.carts.GetOrCreateCart(ctx, customerID)
}

func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	cart, err := s.carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return err
	}
	return s.carts.ClearCart(ctx, cart.ID)
}

type WishlistService struct {
	repo    WishlistRepository
	catalog CatalogRepository
}

func NewWishlistService(repo WishlistRepository, catalog CatalogRepository) *WishlistService {
	return &WishlistService{repo: repo, catalog: catalog}
}

func (s *WishlistService) Add(ctx context.Context, customerID, menuID uuid.UUID) error {
	if _, err := s.catalog.GetMenu(ctx, menuID); err != nil {
		return err
	}
	return s.repo.AddWishlist(ctx, customerID, menuID)
}

func (s *WishlistService) Remove(ctx context.Context, customerID, menuID uuid.UUID) error {
	rows, err := s.repo.RemoveWishlist(ctx, customerID, menuID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("menu %s is not in the wishlist", menuID)
	}
	return nil
}

func (s *WishlistService) List(ctx context.Context, customerID uuid.UUID) ([]domain.WishlistItem, error) {
	return s.repo.ListWishlist(ctx, customerID)
}

// Toggle flips membership and reports whether the menu is now wished for.
func (s *WishlistService) Toggle(ctx context.Context, customerID, menuID uuid.UUID) (bool, error) {
	present, err := s.repo.InWishlist(ctx, customerID, menuID)
	if err != nil {
		return false, err
	}
	if present {
		return false, s.Remove(ctx, customerID, menuID)
	}
	return true, s.Add(ctx, customerID, menuID)
}

func (s *WishlistService) Contains(ctx context.Context, customerID, menuID uuid.UUID) (bool, error) {
	return s.repo.InWishlist(ctx, customerID, menuID)
}
