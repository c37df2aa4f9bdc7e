package domain

import (
	"time"

	"github.com/google/uuid"
)

// Only completed orders can be reviewed.
const OrderCompleted = "Completed"

// Kafka event types on the reviews topic.
const (
	EventNewReview     = "new_review"
	EventReviewUpdated = "review_updated"
	EventReviewDeleted = "review_deleted"
)

const (
	MaxCommentLength  = 1000
	MaxResponseLength = 1000
	MaxReviewImages   = 5
)

type Review struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"order_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	StoreID     uuid.UUID  `json:"store_id"`
	MenuID      *uuid.UUID `json:"menu_id,omitempty"`
	Rating      int        `json:"rating"`
	Comment     string     `json:"comment"`
	ImageURLs   []string   `json:"image_urls"`
	Response    string     `json:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderRef is the part of an order a review needs to check eligibility.
type OrderRef struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	StoreID    uuid.UUID
	Status     string
	MenuIDs    []uuid.UUID
}

func (o OrderRef) HasMenu(id uuid.UUID) bool {
	for _, menuID := range o.MenuIDs {
		if menuID == id {
			return true
		}
	}
	return false
}

type ReviewInput struct {
	OrderID   uuid.UUID  `json:"order_id" validate:"required"`
	MenuID    *uuid.UUID `json:"menu_id"`
	Rating    int        `json:"rating" validate:"min=1,max=5"`
	Comment   string     `json:"comment" validate:"max=1000"`
	ImageURLs []string   `json:"image_urls" validate:"max=5"`
}

type ReviewUpdate struct {
	Rating    int      `json:"rating" validate:"min=1,max=5"`
	Comment   string   `json:"comment" validate:"max=1000"`
	ImageURLs []string `json:"image_urls" validate:"max=5"`
}

type Statistics struct {
	StoreID      uuid.UUID      `json:"store_id"`
	Average      float64        `json:"average_rating"`
	Total        int            `json:"total_reviews"`
	Distribution map[string]int `json:"distribution"`
}

type KafkaMessage struct {
	Type      string     `json:"type"`
	ReviewID  uuid.UUID  `json:"review_id"`
	StoreID   uuid.UUID  `json:"store_id"`
	OrderID   uuid.UUID  `json:"order_id"`
	MenuID    *uuid.UUID `json:"menu_id,omitempty"`
	Rating    int        `json:"rating"`
	Timestamp time.Time  `json:"timestamp"`
}
