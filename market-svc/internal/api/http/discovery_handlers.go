package httpapi

import (
	"net/http"
	"net/url"
	"strconv"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"
	"food-marketplace/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// queryParser reads optional query values and keeps the first malformed one as a validation error.
type queryParser struct {
	values url.Values
	err    error
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{values: r.URL.Query()}
}

func (p *queryParser) fail(key, raw string) {
	if p.err == nil {
		p.err = apperr.Validation("invalid %s %q", key, raw)
	}
}

func (p *queryParser) uuid(key string) *uuid.UUID {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &id
}

func (p *queryParser) float(key string) *float64 {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &v
}

func (p *queryParser) decimal(key string) *decimal.Decimal {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &v
}

func (h *Handler) searchStores(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r)
	q := domain.StoreSearch{
		Term:       p.values.Get("q"),
		CategoryID: p.uuid("category_id"),
		MinRating:  p.float("min_rating"),
		MaxRating:  p.float("max_rating"),
		Latitude:   p.float("latitude"),
		Longitude:  p.float("longitude"),
		RadiusKm:   p.float("radius_km"),
		SortBy:     p.values.Get("sort_by"),
		SortOrder:  p.values.Get("sort_order"),
		Page:       queryInt(r, "page", 1),
		PageSize:   queryInt(r, "page_size", 0),
	}
	if p.err != nil {
		response.Error(w, p.err)
		return
	}
	page, err := h.Discovery.SearchStores(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "stores", page)
}

func (h *Handler) popularStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.Discovery.PopularStores(r.Context(), queryInt(r, "take", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "popular stores", stores)
}

func (h *Handler) searchMenus(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r)
	q := domain.MenuSearch{
		Term:       p.values.Get("q"),
		CategoryID: p.uuid("category_id"),
		StoreID:    p.uuid("store_id"),
		MinPrice:   p.decimal("min_price"),
		MaxPrice:   p.decimal("max_price"),
		MinRating:  p.float("min_rating"),
		SortBy:     p.values.Get("sort_by"),
		SortOrder:  p.values.Get("sort_order"),
		Page:       queryInt(r, "page", 1),
		PageSize:   queryInt(r, "page_size", 0),
	}
	if p.err != nil {
		response.Error(w, p.err)
		return
	}
	page, err := h.Discovery.SearchMenus(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "menus", page)
}

func (h *Handler) popularMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Discovery.PopularMenus(r.Context(), queryInt(r, "take", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "popular menus", menus)
}

func (h *Handler) menusByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		response.Error(w, err)
		return
	}
	menus, err := h.Discovery.MenusByCategory(r.Context(), categoryID, queryInt(r, "take", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "menus", menus)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	results, err := h.Discovery.Search(r.Context(), r.URL.Query().Get("q"), queryInt(r, "take", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "search results", results)
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	names, err := h.Discovery.Suggestions(r.Context(), r.URL.Query().Get("q"), queryInt(r, "take", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "suggestions", names)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.Require(r, auth.RoleAdmin); err != nil {
		response.Error(w, err)
		return
	}
	stats, err := h.Discovery.DashboardStats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "dashboard stats", stats)
}
