package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kafka event types on the order-events topic.
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderCancelled     = "order_cancelled"
	EventOrderRejected      = "order_rejected"
	EventPaymentCompleted   = "payment_completed"
	EventPaymentFailed      = "payment_failed"
)

type OrderEvent struct {
	Type          string          `json:"type"`
	OrderID       uuid.UUID       `json:"order_id"`
	StoreID       uuid.UUID       `json:"store_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Reason        string          `json:"reason,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

func NewOrderEvent(eventType string, order *Order) OrderEvent {
	return OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		StoreID:       order.StoreID,
		CustomerID:    order.CustomerID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalPrice:    order.TotalPrice,
		Reason:        order.RejectReason,
		Timestamp:     time.Now().UTC(),
	}
}

// Push topics and client event names.
const (
	TopicOrder        = "order"
	TopicNotification = "notification"

	PushNewOrder       = "ReceiveNewOrder"
	PushOrderStatus    = "ReceiveOrderStatus"
	PushOrderCancelled = "ReceiveOrderCancelled"
	PushOrderRejected  = "ReceiveOrderRejected"
	PushNotification   = "ReceiveNotification"
)

type PushMessage struct {
	Topic   string      `json:"topic"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
