package mocks

import (
	context "context"

	auth "food-marketplace/auth"
	domain "food-marketplace/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// ReviewServiceInterface is a mock type for the ReviewServiceInterface type
type ReviewServiceInterface struct {
	mock.Mock
}

func (_m *ReviewServiceInterface) review(ret mock.Arguments) (*domain.Review, error) {
	var r0 *domain.Review
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewServiceInterface) reviews(ret mock.Arguments) ([]domain.Review, error) {
	var r0 []domain.Review
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *ReviewServiceInterface) Create(ctx context.Context, customerID uuid.UUID, input domain.ReviewInput) (*domain.Review, error) {
	return _m.review(_m.Called(ctx, customerID, input))
}

func (_m *ReviewServiceInterface) Update(ctx context.Context, customerID, reviewID uuid.UUID, input domain.ReviewUpdate) (*domain.Review, error) {
	return _m.review(_m.Called(ctx, customerID, reviewID, input))
}

func (_m *ReviewServiceInterface) Delete(ctx context.Context, caller auth.Identity, reviewID uuid.UUID) error {
	ret := _m.Called(ctx, caller, reviewID)
	return ret.Error(0)
}

func (_m *ReviewServiceInterface) Respond(ctx context.Context, sellerID, reviewID uuid.UUID, text string) (*domain.Review, error) {
	return _m.review(_m.Called(ctx, sellerID, reviewID, text))
}

func (_m *ReviewServiceInterface) GetByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error) {
	return _m.review(_m.Called(ctx, orderID))
}

func (_m *ReviewServiceInterface) ListStoreReviews(ctx context.Context, storeID uuid.UUID, page, pageSize int) ([]domain.Review, error) {
	return _m.reviews(_m.Called(ctx, storeID, page, pageSize))
}

func (_m *ReviewServiceInterface) ListMenuReviews(ctx context.Context, menuID uuid.UUID, page, pageSize int) ([]domain.Review, error) {
	return _m.reviews(_m.Called(ctx, menuID, page, pageSize))
}

func (_m *ReviewServiceInterface) Statistics(ctx context.Context, storeID uuid.UUID) (*domain.Statistics, error) {
	ret := _m.Called(ctx, storeID)
	var r0 *domain.Statistics
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Statistics)
	}
	return r0, ret.Error(1)
}

func NewReviewServiceInterface(t testingT) *ReviewServiceInterface {
	m := &ReviewServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
