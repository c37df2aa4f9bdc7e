package service

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	DefaultPageSize       = 10
	MaxPageSize           = 100
	DefaultPopularTake    = 10
	DefaultCategoryTake   = 20
	DefaultSearchTake     = 20
	DefaultSuggestionTake = 5

	minSuggestionLength = 2
	earthRadiusKm       = 6371.0
	maxRating           = 5.0
)

type DiscoveryService struct {
	repo DiscoveryRepository
}

func NewDiscoveryService(repo DiscoveryRepository) *DiscoveryService {
	return &DiscoveryService{repo: repo}
}

// Popularity ranks by rating, review volume and order volume together.
func Popularity(rating float64, reviewCount, orderCount int) float64 {
	return rating * float64(reviewCount) * float64(orderCount) / 1000
}

// DistanceKm is the great-circle distance between two coordinates, rounded to metres.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	d := earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(d*1000) / 1000
}

func validateRating(name string, v *float64) error {
	if v != nil && (*v < 0 || *v > maxRating) {
		return apperr.Validation("%s must be between 0 and 5", name)
	}
	return nil
}

func (s *DiscoveryService) SearchStores(ctx context.Context, q domain.StoreSearch) (*domain.Page[domain.StoreResult], error) {
	if err := validateRating("min_rating", q.MinRating); err != nil {
		return nil, err
	}
	if err := validateRating("max_rating", q.MaxRating); err != nil {
		return nil, err
	}
	if q.MinRating != nil && q.MaxRating != nil && *q.MinRating > *q.MaxRating {
		return nil, apperr.Validation("min_rating must not exceed max_rating")
	}
	located := q.Latitude != nil && q.Longitude != nil
	if q.RadiusKm != nil && !located {
		return nil, apperr.Validation("radius_km requires latitude and longitude")
	}
	if q.RadiusKm != nil && *q.RadiusKm <= 0 {
		return nil, apperr.Validation("radius_km must be positive")
	}

	stores, err := s.repo.SearchStores(ctx, q)
	if err != nil {
		return nil, err
	}
	results := make([]domain.StoreResult, 0, len(stores))
	for _, store := range stores {
		store.Popularity = Popularity(store.Rating, store.ReviewCount, store.OrderCount)
		if located {
			d := DistanceKm(*q.Latitude, *q.Longitude, store.Latitude, store.Longitude)
			if q.RadiusKm != nil && d > *q.RadiusKm {
				continue
			}
			store.DistanceKm = &d
		}
		results = append(results, store)
	}
	sortStores(results, q.SortBy, q.SortOrder)
	return paginate(results, q.Page, q.PageSize), nil
}

func (s *DiscoveryService) PopularStores(ctx context.Context, take int) ([]domain.StoreResult, error) {
	stores, err := s.repo.SearchStores(ctx, domain.StoreSearch{})
	if err != nil {
		return nil, err
	}
	for i := range stores {
		stores[i].Popularity = Popularity(stores[i].Rating, stores[i].ReviewCount, stores[i].OrderCount)
	}
	sortStores(stores, domain.SortPopularity, "desc")
	return head(stores, take, DefaultPopularTake), nil
}

func (s *DiscoveryService) SearchMenus(ctx context.Context, q domain.MenuSearch) (*domain.Page[domain.MenuResult], error) {
	if err := validateRating("min_rating", q.MinRating); err != nil {
		return nil, err
	}
	if q.MinPrice != nil && q.MinPrice.IsNegative() {
		return nil, apperr.Validation("min_price must not be negative")
	}
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		return nil, apperr.Validation("min_price must not exceed max_price")
	}

	menus, err := s.searchMenus(ctx, q)
	if err != nil {
		return nil, err
	}
	sortMenus(menus, q.SortBy, q.SortOrder)
	return paginate(menus, q.Page, q.PageSize), nil
}

func (s *DiscoveryService) searchMenus(ctx context.Context, q domain.MenuSearch) ([]domain.MenuResult, error) {
	menus, err := s.repo.SearchMenus(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range menus {
		menus[i].Popularity = Popularity(menus[i].StoreRating, menus[i].StoreReviewCount, menus[i].OrderCount)
	}
	return menus, nil
}

func (s *DiscoveryService) PopularMenus(ctx context.Context, take int) ([]domain.MenuResult, error) {
	menus, err := s.searchMenus(ctx, domain.MenuSearch{})
	if err != nil {
		return nil, err
	}
	sortMenus(menus, domain.SortPopularity, "desc")
	return head(menus, take, DefaultPopularTake), nil
}

func (s *DiscoveryService) MenusByCategory(ctx context.Context, categoryID uuid.UUID, take int) ([]domain.MenuResult, error) {
	menus, err := s.searchMenus(ctx, domain.MenuSearch{CategoryID: &categoryID})
	if err != nil {
		return nil, err
	}
	sortMenus(menus, domain.SortPopularity, "desc")
	return head(menus, take, DefaultCategoryTake), nil
}

// Search splits take between the most popular matching stores and menus, then merges them by popularity.
func (s *DiscoveryService) Search(ctx context.Context, term string, take int) (*domain.SearchResults, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.Validation("search term is required")
	}
	if take <= 0 {
		take = DefaultSearchTake
	}
	half := max(take/2, 1)

	stores, err := s.repo.SearchStores(ctx, domain.StoreSearch{Term: term})
	if err != nil {
		return nil, err
	}
	for i := range stores {
		stores[i].Popularity = Popularity(stores[i].Rating, stores[i].ReviewCount, stores[i].OrderCount)
	}
	sortStores(stores, domain.SortPopularity, "desc")

	menus, err := s.searchMenus(ctx, domain.MenuSearch{Term: term})
	if err != nil {
		return nil, err
	}
	sortMenus(menus, domain.SortPopularity, "desc")

	hits := []domain.SearchHit{}
	for _, store := range head(stores, half, half) {
		hits = append(hits, domain.SearchHit{
			Type:         domain.HitStore,
			ID:           store.ID,
			Name:         store.Name,
			Description:  store.Description,
			ImageURL:     store.ImageURL,
			CategoryName: store.CategoryName,
			Rating:       store.Rating,
			ReviewCount:  store.ReviewCount,
			OrderCount:   store.OrderCount,
			Popularity:   store.Popularity,
			Address:      store.Address,
		})
	}
	for _, menu := range head(menus, half, half) {
		storeID, price := menu.StoreID, menu.Price
		hits = append(hits, domain.SearchHit{
			Type:         domain.HitMenu,
			ID:           menu.ID,
			Name:         menu.Name,
			Description:  menu.Description,
			ImageURL:     menu.ImageURL,
			CategoryName: menu.CategoryName,
			Rating:       menu.StoreRating,
			ReviewCount:  menu.StoreReviewCount,
			OrderCount:   menu.OrderCount,
			Popularity:   menu.Popularity,
			StoreID:      &storeID,
			StoreName:    menu.StoreName,
			Price:        &price,
		})
	}
	sortStable(hits, func(a, b domain.SearchHit) int { return cmp.Compare(a.Popularity, b.Popularity) }, true)
	hits = head(hits, take, take)

	return &domain.SearchResults{Term: term, TotalResults: len(hits), Results: hits}, nil
}

// Suggestions returns distinct names for autocomplete. Queries shorter than two characters get nothing.
func (s *DiscoveryService) Suggestions(ctx context.Context, query string, take int) ([]string, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestionLength {
		return []string{}, nil
	}
	if take <= 0 {
		take = DefaultSuggestionTake
	}
	names, err := s.repo.SuggestNames(ctx, query, take)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names))
	suggestions := []string{}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		suggestions = append(suggestions, name)
		if len(suggestions) == take {
			break
		}
	}
	return suggestions, nil
}

func (s *DiscoveryService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}

// sortStores orders by the named key, ascending unless order is "desc".
// An empty or unknown key falls back to popularity, most popular first.
func sortStores(items []domain.StoreResult, sortBy, order string) {
	desc := strings.EqualFold(strings.TrimSpace(order), "desc")
	var compare func(a, b domain.StoreResult) int
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case domain.SortRating:
		compare = func(a, b domain.StoreResult) int { return cmp.Compare(a.Rating, b.Rating) }
	case domain.SortName:
		compare = func(a, b domain.StoreResult) int { return compareNames(a.Name, b.Name) }
	case domain.SortOrderCount:
		compare = func(a, b domain.StoreResult) int { return cmp.Compare(a.OrderCount, b.OrderCount) }
	case domain.SortDistance:
		compare = func(a, b domain.StoreResult) int { return cmp.Compare(distanceOf(a), distanceOf(b)) }
	case domain.SortPopularity:
		compare = func(a, b domain.StoreResult) int { return cmp.Compare(a.Popularity, b.Popularity) }
	default:
		compare = func(a, b domain.StoreResult) int { return cmp.Compare(a.Popularity, b.Popularity) }
		desc = true
	}
	sortStable(items, compare, desc)
}

func sortMenus(items []domain.MenuResult, sortBy, order string) {
	desc := strings.EqualFold(strings.TrimSpace(order), "desc")
	var compare func(a, b domain.MenuResult) int
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case domain.SortPrice:
		compare = func(a, b domain.MenuResult) int { return a.Price.Cmp(b.Price) }
	case domain.SortRating:
		compare = func(a, b domain.MenuResult) int { return cmp.Compare(a.StoreRating, b.StoreRating) }
	case domain.SortName:
		compare = func(a, b domain.MenuResult) int { return compareNames(a.Name, b.Name) }
	case domain.SortOrderCount:
		compare = func(a, b domain.MenuResult) int { return cmp.Compare(a.OrderCount, b.OrderCount) }
	case domain.SortPopularity:
		compare = func(a, b domain.MenuResult) int { return cmp.Compare(a.Popularity, b.Popularity) }
	default:
		compare = func(a, b domain.MenuResult) int { return cmp.Compare(a.Popularity, b.Popularity) }
		desc = true
	}
	sortStable(items, compare, desc)
}

func sortStable[T any](items []T, compare func(a, b T) int, desc bool) {
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// distanceOf puts stores without a computed distance last.
func distanceOf(r domain.StoreResult) float64 {
	if r.DistanceKm == nil {
		return math.Inf(1)
	}
	return *r.DistanceKm
}

func head[T any](items []T, take, def int) []T {
	if take <= 0 {
		take = def
	}
	if len(items) > take {
		items = items[:take]
	}
	if items == nil {
		return []T{}
	}
	return items
}

func paginate[T any](items []T, page, size int) *domain.Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	start := min((page-1)*size, total)
	end := min(start+size, total)
	return &domain.Page[T]{
		Items:           append([]T{}, items[start:end]...),
		TotalCount:      total,
		Page:            page,
		PageSize:        size,
		TotalPages:      pages,
		HasNextPage:     page < pages,
		HasPreviousPage: page > 1,
	}
}
