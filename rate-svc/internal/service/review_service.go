package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/rate-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  ReviewPublisher
	now        func() time.Time
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		now:        time.Now,
	}
}

func validateContent(rating int, comment string, images []string) error {
	if rating < 1 || rating > 5 {
		return apperr.Validation("rating must be between 1 and 5, got %d", rating)
	}
	if len([]rune(comment)) > domain.MaxCommentLength {
		return apperr.Validation("comment must be at most %d characters", domain.MaxCommentLength)
	}
	if len(images) > domain.MaxReviewImages {
		return apperr.Validation("at most %d images per review", domain.MaxReviewImages)
	}
	return nil
}

// Create records the customer's review of a completed order. Each order gets at most one review;
// the Redis marker answers repeat attempts before the database is asked.
func (s *ReviewService) Create(ctx context.Context, customerID uuid.UUID, input domain.ReviewInput) (*domain.Review, error) {
	if err := validateContent(input.Rating, input.Comment, input.ImageURLs); err != nil {
		return nil, err
	}

	order, err := s.repository.GetOrderForReview(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, apperr.Forbidden("order %s belongs to another customer", order.ID)
	}
	if order.Status != domain.OrderCompleted {
		return nil, apperr.InvalidState("only completed orders can be reviewed, order is %s", order.Status)
	}
	if input.MenuID != nil && !order.HasMenu(*input.MenuID) {
		return nil, apperr.Validation("menu %s was not part of order %s", *input.MenuID, order.ID)
	}

	cacheKey := s.cache.ReviewMarkerKey(order.ID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return nil, apperr.Conflict("order %s has already been reviewed", order.ID)
	}
	exists, err := s.repository.ExistsForOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		_ = s.cache.SetMarker(ctx, cacheKey)
		return nil, apperr.Conflict("order %s has already been reviewed", order.ID)
	}

	review := &domain.Review{
		ID:         uuid.New(),
		OrderID:    order.ID,
		CustomerID: customerID,
		StoreID:    order.StoreID,
		MenuID:     input.MenuID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		ImageURLs:  nonNil(input.ImageURLs),
	}
	if err := s.repository.InsertReview(ctx, review); err != nil {
		return nil, err
	}

	if err := s.cache.SetMarker(ctx, cacheKey); err != nil {
		log.Printf("[REVIEW] cache marker for order %s: %v", order.ID, err)
	}
	s.publish(ctx, domain.EventNewReview, review)

	log.Printf("[REVIEW] created review %s for order %s", review.ID, order.ID)
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, customerID, reviewID uuid.UUID, input domain.ReviewUpdate) (*domain.Review, error) {
	if err := validateContent(input.Rating, input.Comment, input.ImageURLs); err != nil {
		return nil, err
	}

	review, err := s.repository.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.CustomerID != customerID {
		return nil, apperr.Forbidden("review %s belongs to another customer", reviewID)
	}

	review.Rating = input.Rating
	review.Comment = strings.TrimSpace(input.Comment)
	review.ImageURLs = nonNil(input.ImageURLs)
	if err := s.repository.UpdateReview(ctx, review); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventReviewUpdated, review)
	return review, nil
}

// Delete is open to the author and to admins.
func (s *ReviewService) Delete(ctx context.Context, caller auth.Identity, reviewID uuid.UUID) error {
	review, err := s.repository.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.CustomerID != caller.UserID && !caller.Is(auth.RoleAdmin) {
		return apperr.Forbidden("review %s belongs to another customer", reviewID)
	}

	if err := s.repository.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	if err := s.cache.ClearMarker(ctx, s.cache.ReviewMarkerKey(review.OrderID)); err != nil {
		log.Printf("[REVIEW] clear marker for order %s: %v", review.OrderID, err)
	}

	s.publish(ctx, domain.EventReviewDeleted, review)
	return nil
}

// Respond stores the store owner's public reply, replacing any earlier one.
func (s *ReviewService) Respond(ctx context.Context, sellerID, reviewID uuid.UUID, text string) (*domain.Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Validation("response must not be empty")
	}
	if len([]rune(text)) > domain.MaxResponseLength {
		return nil, apperr.Validation("response must be at most %d characters", domain.MaxResponseLength)
	}

	review, err := s.repository.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	ownerID, err := s.repository.GetStoreOwner(ctx, review.StoreID)
	if err != nil {
		return nil, err
	}
	if ownerID != sellerID {
		return nil, apperr.Forbidden("store %s belongs to another seller", review.StoreID)
	}

	at := s.now().UTC()
	if err := s.repository.SetResponse(ctx, reviewID, text, at); err != nil {
		return nil, err
	}
	review.Response = text
	review.RespondedAt = &at
	return review, nil
}

func (s *ReviewService) GetByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error) {
	return s.repository.GetReviewByOrder(ctx, orderID)
}

func (s *ReviewService) ListStoreReviews(ctx context.Context, storeID uuid.UUID, page, pageSize int) ([]domain.Review, error) {
	limit, offset := paginate(page, pageSize)
	return s.repository.ListStoreReviews(ctx, storeID, limit, offset)
}

func (s *ReviewService) ListMenuReviews(ctx context.Context, menuID uuid.UUID, page, pageSize int) ([]domain.Review, error) {
	limit, offset := paginate(page, pageSize)
	return s.repository.ListMenuReviews(ctx, menuID, limit, offset)
}

// Statistics reports the average rounded to two decimals, the review count and the 1..5 distribution.
func (s *ReviewService) Statistics(ctx context.Context, storeID uuid.UUID) (*domain.Statistics, error) {
	distribution, err := s.repository.RatingDistribution(ctx, storeID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Statistics{StoreID: storeID, Distribution: map[string]int{}}
	sum := 0
	for rating := 1; rating <= 5; rating++ {
		key := fmt.Sprintf("%d", rating)
		count := distribution[key]
		stats.Distribution[key] = count
		stats.Total += count
		sum += rating * count
	}
	if stats.Total > 0 {
		stats.Average = decimal.NewFromInt(int64(sum)).
			DivRound(decimal.NewFromInt(int64(stats.Total)), 2).
			InexactFloat64()
	}
	return stats, nil
}

func (s *ReviewService) publish(ctx context.Context, eventType string, review *domain.Review) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishReview(ctx, domain.KafkaMessage{
		Type:      eventType,
		ReviewID:  review.ID,
		StoreID:   review.StoreID,
		OrderID:   review.OrderID,
		MenuID:    review.MenuID,
		Rating:    review.Rating,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		log.Printf("[REVIEW] publish %s for review %s: %v", eventType, review.ID, err)
	}
}

func paginate(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}

func nonNil(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
