package service

import (
	"context"
	"encoding/json"
	"log"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

const DefaultNotificationLimit = 20

type NotificationService struct {
	repo   NotificationRepository
	pusher Pusher
}

func NewNotificationService(repo NotificationRepository, pusher Pusher) *NotificationService {
	return &NotificationService{repo: repo, pusher: pusher}
}

// Notify stores the notification and then pushes it. The push is best-effort;
// only a failed insert is reported.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, title, message string, kind domain.NotificationType, data interface{}) error {
	n := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		n.Data = raw
	}

	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return err
	}

	s.push(ctx, userID, domain.PushMessage{Topic: domain.TopicNotification, Event: domain.PushNotification, Payload: n})
	return nil
}

func (s *NotificationService) PushEvent(ctx context.Context, userID uuid.UUID, event string, payload interface{}) {
	s.push(ctx, userID, domain.PushMessage{Topic: domain.TopicOrder, Event: event, Payload: payload})
}

func (s *NotificationService) push(ctx context.Context, userID uuid.UUID, msg domain.PushMessage) {
	if s.pusher == nil {
		return
	}
	if err := s.pusher.Push(ctx, userID, msg); err != nil {
		log.Printf("[PUSH] %s to user %s failed: %v", msg.Event, userID, err)
	}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultNotificationLimit
	}
	return s.repo.ListNotifications(ctx, userID, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := s.repo.MarkNotificationRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("notification %s not found", id)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllNotificationsRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := s.repo.DeleteNotification(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("notification %s not found", id)
	}
	return nil
}
