package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortName       = "name"
	SortOrderCount = "ordercount"
	SortDistance   = "distance"
	SortPrice      = "price"

	HitStore = "store"
	HitMenu  = "menu"
)

// StoreSearch filters approved stores. Term matches name, address or description.
type StoreSearch struct {
	Term       string
	CategoryID *uuid.UUID
	MinRating  *float64
	MaxRating  *float64
	Latitude   *float64
	Longitude  *float64
	RadiusKm   *float64
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// MenuSearch filters available menus of approved stores. MinRating applies to the store rating.
type MenuSearch struct {
	Term       string
	CategoryID *uuid.UUID
	StoreID    *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  *float64
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

type StoreResult struct {
	Store
	ReviewCount int      `json:"review_count"`
	OrderCount  int      `json:"order_count"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	Popularity  float64  `json:"popularity_score"`
}

type MenuResult struct {
	Menu
	StoreName        string  `json:"store_name"`
	StoreRating      float64 `json:"store_rating"`
	StoreReviewCount int     `json:"store_review_count"`
	OrderCount       int     `json:"order_count"`
	Popularity       float64 `json:"popularity_score"`
}

type Page[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"total_count"`
	Page            int  `json:"page"`
	PageSize        int  `json:"page_size"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// SearchHit is one store or menu in a combined search, told apart by Type.
type SearchHit struct {
	Type         string           `json:"type"`
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	ImageURL     string           `json:"image_url"`
	CategoryName string           `json:"category_name,omitempty"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"review_count"`
	OrderCount   int              `json:"order_count"`
	Popularity   float64          `json:"popularity_score"`
	Address      string           `json:"address,omitempty"`
	StoreID      *uuid.UUID       `json:"store_id,omitempty"`
	StoreName    string           `json:"store_name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

type SearchResults struct {
	Term         string      `json:"search_term"`
	TotalResults int         `json:"total_results"`
	Results      []SearchHit `json:"results"`
}

// DashboardStats are the marketplace-wide counters shown to admins.
type DashboardStats struct {
	Customers     int             `json:"customers"`
	Sellers       int             `json:"sellers"`
	Stores        int             `json:"stores"`
	PendingStores int             `json:"pending_stores"`
	Menus         int             `json:"menus"`
	Orders        int             `json:"orders"`
	Revenue       decimal.Decimal `json:"revenue"`
}
