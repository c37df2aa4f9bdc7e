package mocks

import (
	context "context"
	time "time"

	domain "food-marketplace/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ReviewRepository is a mock type for the ReviewRepository type
type ReviewRepository struct {
	mock.Mock
}

func (_m *ReviewRepository) GetOrderForReview(ctx context.Context, orderID uuid.UUID) (*domain.OrderRef, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.OrderRef
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.OrderRef)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, orderID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *ReviewRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	ret := _m.Called(ctx, review)
	return ret.Error(0)
}

func (_m *ReviewRepository) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Review
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewRepository) GetReviewByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Review
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewRepository) UpdateReview(ctx context.Context, review *domain.Review) error {
	ret := _m.Called(ctx, review)
	return ret.Error(0)
}

func (_m *ReviewRepository) SetResponse(ctx context.Context, id uuid.UUID, text string, at time.Time) error {
	ret := _m.Called(ctx, id, text, at)
	return ret.Error(0)
}

func (_m *ReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *ReviewRepository) ListStoreReviews(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	ret := _m.Called(ctx, storeID, limit, offset)
	var r0 []domain.Review
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewRepository) ListMenuReviews(ctx context.Context, menuID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	ret := _m.Called(ctx, menuID, limit, offset)
	var r0 []domain.Review
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewRepository) RatingDistribution(ctx context.Context, storeID uuid.UUID) (map[string]int, error) {
	ret := _m.Called(ctx, storeID)
	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewRepository) GetStoreOwner(ctx context.Context, storeID uuid.UUID) (uuid.UUID, error) {
	ret := _m.Called(ctx, storeID)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// NewReviewRepository creates a new instance of ReviewRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReviewRepository(t testingT) *ReviewRepository {
	m := &ReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
