package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"
	"food-marketplace/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type storeRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Address     string     `json:"address" validate:"max=500"`
	Description string     `json:"description" validate:"max=2000"`
	Latitude    float64    `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64    `json:"longitude" validate:"gte=-180,lte=180"`
	ImageURL    string     `json:"image_url"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

func (req storeRequest) store() *domain.Store {
	return &domain.Store{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
}

type menuRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Status      string          `json:"status"`
	CategoryID  *uuid.UUID      `json:"category_id"`
}

func (req menuRequest) menu() *domain.Menu {
	return &domain.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Status:      domain.MenuStatus(req.Status),
		CategoryID:  req.CategoryID,
	}
}

// optionalIdentity is used on public endpoints that show more to owners.
func optionalIdentity(r *http.Request) *auth.Identity {
	id, err := auth.FromRequest(r)
	if err != nil {
		return nil
	}
	return &id
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "categories", categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.Require(r, auth.RoleAdmin); err != nil {
		response.Error(w, err)
		return
	}
	var req categoryRequest
	if !response.Decode(w, r, &req) {
		return
	}
	category := &domain.Category{Name: req.Name, Description: req.Description}
	if err := h.Catalog.CreateCategory(r.Context(), category); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "category created", category)
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	var categoryID *uuid.UUID
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, apperr.Validation("invalid category_id %q", raw))
			return
		}
		categoryID = &id
	}
	stores, err := h.Catalog.ListStores(r.Context(), categoryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "stores", stores)
}

func (h *Handler) registerStore(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req storeRequest
	if !response.Decode(w, r, &req) {
		return
	}
	store := req.store()
	if err := h.Catalog.RegisterStore(r.Context(), caller.UserID, store); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "store registered and waiting for approval", store)
}

func (h *Handler) myStores(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	stores, err := h.Catalog.MyStores(r.Context(), caller.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "stores", stores)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	store, err := h.Catalog.GetStore(r.Context(), optionalIdentity(r), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "store", store)
}

func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req storeRequest
	if !response.Decode(w, r, &req) {
		return
	}
	store := req.store()
	store.ID = id
	if err := h.Catalog.UpdateStore(r.Context(), caller.UserID, store); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "store updated", store)
}

func (h *Handler) closeStore(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.Catalog.CloseStore(r.Context(), caller.UserID, id); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "store closed", nil)
}

func (h *Handler) listPendingStores(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.Require(r, auth.RoleAdmin); err != nil {
		response.Error(w, err)
		return
	}
	stores, err := h.Catalog.ListPendingStores(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "pending stores", stores)
}

func (h *Handler) approveStore(w http.ResponseWriter, r *http.Request) {
	h.reviewStore(w, r, h.Catalog.ApproveStore, "store approved")
}

func (h *Handler) rejectStore(w http.ResponseWriter, r *http.Request) {
	h.reviewStore(w, r, h.Catalog.RejectStore, "store rejected")
}

func (h *Handler) reviewStore(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, id uuid.UUID) error, message string) {
	if _, err := auth.Require(r, auth.RoleAdmin); err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := decide(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, message, nil)
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeId")
	if err != nil {
		response.Error(w, err)
		return
	}
	menus, err := h.Catalog.ListMenus(r.Context(), optionalIdentity(r), storeID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "menus", menus)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	storeID, err := pathID(r, "storeId")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req menuRequest
	if !response.Decode(w, r, &req) {
		return
	}
	menu := req.menu()
	menu.StoreID = storeID
	if err := h.Catalog.CreateMenu(r.Context(), caller.UserID, menu); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "menu created", menu)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	menu, err := h.Catalog.GetMenu(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "menu", menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req menuRequest
	if !response.Decode(w, r, &req) {
		return
	}
	menu := req.menu()
	menu.ID = id
	if err := h.Catalog.UpdateMenu(r.Context(), caller.UserID, menu); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "menu updated", menu)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.Catalog.DeleteMenu(r.Context(), caller.UserID, id); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "menu deleted", nil)
}

func (h *Handler) uploadStoreImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "store", h.Catalog.SetStoreImage)
}

func (h *Handler) uploadMenuImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "menu", h.Catalog.SetMenuImage)
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request, kind string, attach func(ctx context.Context, sellerID, id uuid.UUID, imageURL string) error) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, apperr.Validation("file too large"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, apperr.Validation("image file is required"))
		return
	}
	defer file.Close()

	name := fmt.Sprintf("%s_%s_%d%s", kind, id, time.Now().UnixNano(), filepath.Ext(header.Filename))
	imageURL, err := h.Images.Save(name, file)
	if err != nil {
		response.Error(w, fmt.Errorf("save %s image: %w", kind, err))
		return
	}
	if err := attach(r.Context(), caller.UserID, id, imageURL); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "image uploaded", map[string]string{"image_url": imageURL})
}
