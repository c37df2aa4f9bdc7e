package mocks

import (
	context "context"

	domain "food-marketplace/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ReviewPublisher is a mock type for the ReviewPublisher type
type ReviewPublisher struct {
	mock.Mock
}

func (_m *ReviewPublisher) PublishReview(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

func NewReviewPublisher(t testingT) *ReviewPublisher {
	m := &ReviewPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
