package mocks

import (
	context "context"

	domain "food-marketplace/market-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// NotificationRepository is a mock type for the NotificationRepository type
type NotificationRepository struct {
	mock.Mock
}

func (_m *NotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	ret := _m.Called(ctx, n)
	return ret.Error(0)
}

func (_m *NotificationRepository) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	ret := _m.Called(ctx, userID, limit)
	var r0 []domain.Notification
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Notification)
	}
	return r0, ret.Error(1)
}

func (_m *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, userID)
	return ret.Int(0), ret.Error(1)
}

func (_m *NotificationRepository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, id, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *NotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *NotificationRepository) DeleteNotification(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, id, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewNotificationRepository creates a new instance of NotificationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
