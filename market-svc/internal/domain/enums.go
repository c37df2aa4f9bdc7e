package domain

import (
	"strings"

	"food-marketplace/apperr"
)

type StoreStatus string

const (
	StorePending  StoreStatus = "Pending"
	StoreApproved StoreStatus = "Approved"
	StoreRejected StoreStatus = "Rejected"
	StoreClosed   StoreStatus = "Closed"
)

var storeStatuses = []StoreStatus{StorePending, StoreApproved, StoreRejected, StoreClosed}

func ParseStoreStatus(s string) (StoreStatus, error) {
	for _, status := range storeStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, nil
		}
	}
	return "", apperr.Validation("unknown store status %q", s)
}

type MenuStatus string

const (
	MenuAvailable   MenuStatus = "Available"
	MenuUnavailable MenuStatus = "Unavailable"
)

func ParseMenuStatus(s string) (MenuStatus, error) {
	switch {
	case strings.EqualFold(strings.TrimSpace(s), string(MenuAvailable)):
		return MenuAvailable, nil
	case strings.EqualFold(strings.TrimSpace(s), string(MenuUnavailable)):
		return MenuUnavailable, nil
	}
	return "", apperr.Validation("unknown menu status %q", s)
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderConfirmed  OrderStatus = "Confirmed"
	OrderPreparing  OrderStatus = "Preparing"
	OrderDelivering OrderStatus = "Delivering"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
	OrderRejected   OrderStatus = "Rejected"
)

var orderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing, OrderDelivering,
	OrderCompleted, OrderCancelled, OrderRejected,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range orderStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, nil
		}
	}
	return "", apperr.Validation("unknown order status %q", s)
}

// Withdrawable reports whether the customer may cancel or the seller may reject.
func (s OrderStatus) Withdrawable() bool {
	return s == OrderPending || s == OrderConfirmed
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled || s == OrderRejected
}

// Next lists the lifecycle successors of s. Sellers are not held to it when
// setting a status directly.
func (s OrderStatus) Next() []OrderStatus {
	switch s {
	case OrderPending:
		return []OrderStatus{OrderConfirmed, OrderRejected, OrderCancelled}
	case OrderConfirmed:
		return []OrderStatus{OrderPreparing, OrderCancelled, OrderRejected}
	case OrderPreparing:
		return []OrderStatus{OrderDelivering}
	case OrderDelivering:
		return []OrderStatus{OrderCompleted}
	}
	return nil
}

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "Online"
)

// ParsePaymentMethod falls back to cash on delivery for anything it does not recognise.
func ParsePaymentMethod(s string) PaymentMethod {
	if strings.EqualFold(strings.TrimSpace(s), string(PaymentOnline)) {
		return PaymentOnline
	}
	return PaymentCOD
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, status := range []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed} {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, nil
		}
	}
	return "", apperr.Validation("unknown payment status %q", s)
}

type NotificationType string

const (
	NotificationOrder  NotificationType = "order"
	NotificationSystem NotificationType = "system"
)
