package tests

import (
	"context"
	"strings"
	"testing"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/rate-svc/internal/domain"
	"food-marketplace/rate-svc/internal/mocks"
	"food-marketplace/rate-svc/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewDeps struct {
	repository *mocks.ReviewRepository
	cache      *mocks.ReviewCache
	publisher  *mocks.ReviewPublisher
	svc        *service.ReviewService
}

func newReviewDeps(t *testing.T) *reviewDeps {
	d := &reviewDeps{
		repository: mocks.NewReviewRepository(t),
		cache:      mocks.NewReviewCache(t),
		publisher:  mocks.NewReviewPublisher(t),
	}
	d.svc = service.NewReviewService(d.repository, d.cache, d.publisher)
	return d
}

func completedOrder(customerID uuid.UUID, menuIDs ...uuid.UUID) *domain.OrderRef {
	return &domain.OrderRef{
		ID:         uuid.New(),
		CustomerID: customerID,
		StoreID:    uuid.New(),
		Status:     domain.OrderCompleted,
		MenuIDs:    menuIDs,
	}
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	menuID := uuid.New()

	t.Run("success_create_new_review", func(t *testing.T) {
		d := newReviewDeps(t)
		order := completedOrder(customerID, menuID)
		key := "review:order:" + order.ID.String()

		d.repository.On("GetOrderForReview", ctx, order.ID).Return(order, nil).Once()
		d.cache.On("ReviewMarkerKey", order.ID).Return(key).Once()
		d.cache.On("Exists", ctx, key).Return(false, nil).Once()
		d.repository.On("ExistsForOrder", ctx, order.ID).Return(false, nil).Once()
		d.repository.On("InsertReview", ctx, mock.AnythingOfType("*domain.Review")).Return(nil).Once()
		d.cache.On("SetMarker", ctx, key).Return(nil).Once()
		d.publisher.On("PublishReview", ctx, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
			return msg.Type == domain.EventNewReview && msg.StoreID == order.StoreID && msg.Rating == 5
		})).Return(nil).Once()

		review, err := d.svc.Create(ctx, customerID, domain.ReviewInput{
			OrderID: order.ID, MenuID: &menuID, Rating: 5, Comment: "  Great!  ",
		})

		require.NoError(t, err)
		assert.Equal(t, order.StoreID, review.StoreID)
		assert.Equal(t, customerID, review.CustomerID)
		assert.Equal(t, "Great!", review.Comment)
		assert.Equal(t, []string{}, review.ImageURLs)
	})

	t.Run("publish failure does not fail the review", func(t *testing.T) {
		d := newReviewDeps(t)
		order := completedOrder(customerID)

		d.repository.On("GetOrderForReview", ctx, order.ID).Return(order, nil).Once()
		d.cache.On("ReviewMarkerKey", order.ID).Return("k").Once()
		d.cache.On("Exists", ctx, "k").Return(false, assert.AnError).Once()
		d.repository.On("ExistsForOrder", ctx, order.ID).Return(false, nil).Once()
		d.repository.On("InsertReview", ctx, mock.Anything).Return(nil).Once()
		d.cache.On("SetMarker", ctx, "k").Return(assert.AnError).Once()
		d.publisher.On("PublishReview", ctx, mock.Anything).Return(assert.AnError).Once()

		_, err := d.svc.Create(ctx, customerID, domain.ReviewInput{OrderID: order.ID, Rating: 3})

		assert.NoError(t, err)
	})

	t.Run("error_duplicate_review_from_marker", func(t *testing.T) {
		d := newReviewDeps(t)
		order := completedOrder(customerID)

		d.repository.On("GetOrderForReview", ctx, order.ID).Return(order, nil).Once()
		d.cache.On("ReviewMarkerKey", order.ID).Return("k").Once()
		d.cache.On("Exists", ctx, "k").Return(true, nil).Once()

		_, err := d.svc.Create(ctx, customerID, domain.ReviewInput{OrderID: order.ID, Rating: 4})

		assert.ErrorIs(t, err, apperr.ErrConflict)
		d.repository.AssertNotCalled(t, "InsertReview", mock.Anything, mock.Anything)
	})

	t.Run("error_duplicate_review_from_database", func(t *testing.T) {
		d := newReviewDeps(t)
		order := completedOrder(customerID)

		d.repository.On("GetOrderForReview", ctx, order.ID).Return(order, nil).Once()
		d.cache.On("ReviewMarkerKey", order.ID).Return("k").Once()
		d.cache.On("Exists", ctx, "k").Return(false, nil).Once()
		d.repository.On("ExistsForOrder", ctx, order.ID).Return(true, nil).Once()
		d.cache.On("SetMarker", ctx, "k").Return(nil).Once()

		_, err := d.svc.Create(ctx, customerID, domain.ReviewInput{OrderID: order.ID, Rating: 4})

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	ineligible := []struct {
		name    string
		order   func() *domain.OrderRef
		input   func(orderID uuid.UUID) domain.ReviewInput
		wantErr error
	}{
		{
			name:    "someone else's order",
			order:   func() *domain.OrderRef { return completedOrder(uuid.New()) },
			input:   func(id uuid.UUID) domain.ReviewInput { return domain.ReviewInput{OrderID: id, Rating: 4} },
			wantErr: apperr.ErrForbidden,
		},
		{
			name: "order not completed",
			order: func() *domain.OrderRef {
				o := completedOrder(customerID)
				o.Status = "Delivering"
				return o
			},
			input:   func(id uuid.UUID) domain.ReviewInput { return domain.ReviewInput{OrderID: id, Rating: 4} },
			wantErr: apperr.ErrInvalidState,
		},
		{
			name:  "menu not in order",
			order: func() *domain.OrderRef { return completedOrder(customerID, menuID) },
			input: func(id uuid.UUID) domain.ReviewInput {
				other := uuid.New()
				return domain.ReviewInput{OrderID: id, MenuID: &other, Rating: 4}
			},
			wantErr: apperr.ErrValidation,
		},
	}
	for _, testCase := range ineligible {
		t.Run(testCase.name, func(t *testing.T) {
			d := newReviewDeps(t)
			order := testCase.order()
			d.repository.On("GetOrderForReview", ctx, order.ID).Return(order, nil).Once()

			_, err := d.svc.Create(ctx, customerID, testCase.input(order.ID))

			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}

	invalid := []struct {
		name  string
		input domain.ReviewInput
	}{
		{name: "rating zero", input: domain.ReviewInput{OrderID: uuid.New(), Rating: 0}},
		{name: "rating six", input: domain.ReviewInput{OrderID: uuid.New(), Rating: 6}},
		{name: "long comment", input: domain.ReviewInput{OrderID: uuid.New(), Rating: 5, Comment: strings.Repeat("a", 1001)}},
		{name: "too many images", input: domain.ReviewInput{OrderID: uuid.New(), Rating: 5, ImageURLs: make([]string, 6)}},
	}
	for _, testCase := range invalid {
		t.Run(testCase.name, func(t *testing.T) {
			d := newReviewDeps(t)

			_, err := d.svc.Create(ctx, customerID, testCase.input)

			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		d := newReviewDeps(t)
		id := uuid.New()
		d.repository.On("GetOrderForReview", ctx, id).Return(nil, apperr.NotFound("order %s not found", id)).Once()

		_, err := d.svc.Create(ctx, customerID, domain.ReviewInput{OrderID: id, Rating: 5})

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestReviewService_UpdateDeleteRespond(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	sellerID := uuid.New()

	existing := func() *domain.Review {
		return &domain.Review{ID: uuid.New(), OrderID: uuid.New(), CustomerID: customerID, StoreID: uuid.New(), Rating: 2}
	}

	t.Run("author updates", func(t *testing.T) {
		d := newReviewDeps(t)
		review := existing()
		d.repository.On("GetReview", ctx, review.ID).Return(review, nil).Once()
		d.repository.On("UpdateReview", ctx, review).Return(nil).Once()
		d.publisher.On("PublishReview", ctx, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
			return msg.Type == domain.EventReviewUpdated && msg.Rating == 4
		})).Return(nil).Once()

		got, err := d.svc.Update(ctx, customerID, review.ID, domain.ReviewUpdate{Rating: 4, Comment: "better"})

		require.NoError(t, err)
		assert.Equal(t, 4, got.Rating)
	})

	t.Run("other customer cannot update", func(t *testing.T) {
		d := newReviewDeps(t)
		review := existing()
		d.repository.On("GetReview", ctx, review.ID).Return(review, nil).Once()

		_, err := d.svc.Update(ctx, uuid.New(), review.ID, domain.ReviewUpdate{Rating: 4})

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	deletes := []struct {
		name    string
		caller  auth.Identity
		wantErr error
	}{
		{name: "author", caller: auth.Identity{UserID: customerID, Role: auth.RoleCustomer}},
		{name: "admin", caller: auth.Identity{UserID: uuid.New(), Role: auth.RoleAdmin}},
		{name: "other customer", caller: auth.Identity{UserID: uuid.New(), Role: auth.RoleCustomer}, wantErr: apperr.ErrForbidden},
	}
	for _, testCase := range deletes {
		t.Run("delete by "+testCase.name, func(t *testing.T) {
			d := newReviewDeps(t)
			review := existing()
			d.repository.On("GetReview", ctx, review.ID).Return(review, nil).Once()
			if testCase.wantErr == nil {
				d.repository.On("DeleteReview", ctx, review.ID).Return(nil).Once()
				d.cache.On("ReviewMarkerKey", review.OrderID).Return("k").Once()
				d.cache.On("ClearMarker", ctx, "k").Return(nil).Once()
				d.publisher.On("PublishReview", ctx, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
					return msg.Type == domain.EventReviewDeleted
				})).Return(nil).Once()
			}

			err := d.svc.Delete(ctx, testCase.caller, review.ID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("store owner responds", func(t *testing.T) {
		d := newReviewDeps(t)
		review := existing()
		d.repository.On("GetReview", ctx, review.ID).Return(review, nil).Once()
		d.repository.On("GetStoreOwner", ctx, review.StoreID).Return(sellerID, nil).Once()
		d.repository.On("SetResponse", ctx, review.ID, "Thanks!", mock.AnythingOfType("time.Time")).Return(nil).Once()

		got, err := d.svc.Respond(ctx, sellerID, review.ID, " Thanks! ")

		require.NoError(t, err)
		assert.Equal(t, "Thanks!", got.Response)
		assert.NotNil(t, got.RespondedAt)
	})

	t.Run("other seller cannot respond", func(t *testing.T) {
		d := newReviewDeps(t)
		review := existing()
		d.repository.On("GetReview", ctx, review.ID).Return(review, nil).Once()
		d.repository.On("GetStoreOwner", ctx, review.StoreID).Return(uuid.New(), nil).Once()

		_, err := d.svc.Respond(ctx, sellerID, review.ID, "Thanks")

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("empty response", func(t *testing.T) {
		d := newReviewDeps(t)

		_, err := d.svc.Respond(ctx, sellerID, uuid.New(), "   ")

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestReviewService_Statistics(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	tests := []struct {
		name         string
		distribution map[string]int
		wantAverage  float64
		wantTotal    int
	}{
		{name: "no reviews", distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}},
		{name: "mixed", distribution: map[string]int{"1": 0, "2": 0, "3": 1, "4": 1, "5": 1}, wantAverage: 4, wantTotal: 3},
		{name: "rounded to two decimals", distribution: map[string]int{"5": 2, "4": 1}, wantAverage: 4.67, wantTotal: 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := newReviewDeps(t)
			d.repository.On("RatingDistribution", ctx, storeID).Return(testCase.distribution, nil).Once()

			stats, err := d.svc.Statistics(ctx, storeID)

			require.NoError(t, err)
			assert.Equal(t, testCase.wantAverage, stats.Average)
			assert.Equal(t, testCase.wantTotal, stats.Total)
			assert.Len(t, stats.Distribution, 5)
		})
	}
}

func TestReviewService_ListPagination(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	tests := []struct {
		name       string
		page, size int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", wantLimit: 20, wantOffset: 0},
		{name: "third page", page: 3, size: 10, wantLimit: 10, wantOffset: 20},
		{name: "oversized page", page: 1, size: 500, wantLimit: 20, wantOffset: 0},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := newReviewDeps(t)
			d.repository.On("ListStoreReviews", ctx, storeID, testCase.wantLimit, testCase.wantOffset).Return([]domain.Review{}, nil).Once()

			_, err := d.svc.ListStoreReviews(ctx, storeID, testCase.page, testCase.size)

			require.NoError(t, err)
		})
	}
}
