package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review event types published by rate-svc on the reviews topic.
const (
	EventNewReview     = "new_review"
	EventReviewUpdated = "review_updated"
	EventReviewDeleted = "review_deleted"
)

type ReviewEvent struct {
	Type      string     `json:"type"`
	ReviewID  uuid.UUID  `json:"review_id"`
	StoreID   uuid.UUID  `json:"store_id"`
	OrderID   uuid.UUID  `json:"order_id"`
	MenuID    *uuid.UUID `json:"menu_id,omitempty"`
	Rating    int        `json:"rating"`
	Timestamp time.Time  `json:"timestamp"`
}

func (e ReviewEvent) AffectsRating() bool {
	switch e.Type {
	case EventNewReview, EventReviewUpdated, EventReviewDeleted:
		return true
	}
	return false
}

// OrderEvent is the subset of the market-svc order event this service reads.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   uuid.UUID `json:"order_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type RatingSnapshot struct {
	StoreID     uuid.UUID
	Rating      float64
	ReviewCount int
}
