package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

type PaymentService struct {
	orders    OrderRepository
	gateway   PaymentGateway
	qr        QRGenerator
	notifier  Notifier
	publisher OrderEventPublisher
	now       func() time.Time
}

func NewPaymentService(orders OrderRepository, gateway PaymentGateway, qr QRGenerator, notifier Notifier, publisher OrderEventPublisher) *PaymentService {
	return &PaymentService{
		orders:    orders,
		gateway:   gateway,
		qr:        qr,
		notifier:  notifier,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *PaymentService) ownedOrder(ctx context.Context, customerID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, apperr.Forbidden("order %s belongs to another customer", orderID)
	}
	return order, nil
}

func (s *PaymentService) CreatePaymentURL(ctx context.Context, customerID, orderID uuid.UUID, clientIP string) (string, error) {
	order, err := s.ownedOrder(ctx, customerID, orderID)
	if err != nil {
		return "", err
	}
	if order.PaymentStatus != domain.PaymentPending {
		return "", apperr.InvalidState("order is already paid or not payable (payment %s)", order.PaymentStatus)
	}
	if order.Status == domain.OrderCancelled || order.Status == domain.OrderRejected {
		return "", apperr.InvalidState("order is %s and cannot be paid", order.Status)
	}

	return s.gateway.BuildPaymentURL(PaymentRequest{
		OrderID:     order.ID,
		Amount:      order.TotalPrice,
		Description: fmt.Sprintf("Payment for order %s - %s", order.ID, order.StoreName),
		ClientIP:    clientIP,
		CreatedAt:   s.now(),
	}), nil
}

// HandleCallback reconciles the gateway return with the order. Nothing is written
// unless the signature and the amount both check out.
func (s *PaymentService) HandleCallback(ctx context.Context, params url.Values) (*domain.PaymentCallbackResult, error) {
	if !s.gateway.VerifyCallback(params) {
		return nil, apperr.Security("payment callback signature mismatch")
	}

	orderID, err := uuid.Parse(params.Get("vnp_TxnRef"))
	if err != nil {
		return nil, apperr.Validation("invalid order reference %q", params.Get("vnp_TxnRef"))
	}
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	paid, err := strconv.ParseInt(params.Get("vnp_Amount"), 10, 64)
	if err != nil {
		return nil, apperr.Validation("invalid payment amount %q", params.Get("vnp_Amount"))
	}
	if paid != AmountInMinorUnits(order.TotalPrice) {
		return nil, apperr.Validation("payment amount %d does not match order amount %d", paid, AmountInMinorUnits(order.TotalPrice))
	}

	code := params.Get("vnp_ResponseCode")
	result := &domain.PaymentCallbackResult{
		OrderID:      order.ID,
		ResponseCode: code,
		Success:      code == VNPaySuccessCode,
	}

	if order.PaymentStatus == domain.PaymentCompleted {
		log.Printf("[PAYMENT] order %s already paid, callback code %s ignored", order.ID, code)
		result.Success = true
		return result, nil
	}

	if result.Success {
		if err := s.orders.UpdatePayment(ctx, order.ID, domain.PaymentCompleted, domain.OrderConfirmed); err != nil {
			return nil, err
		}
		order.PaymentStatus = domain.PaymentCompleted
		order.Status = domain.OrderConfirmed
		s.afterPayment(ctx, domain.EventPaymentCompleted, order)

		if err := s.notifier.Notify(ctx, order.SellerID, "Payment received",
			fmt.Sprintf("Order #%s has been paid online", order.ShortID()), domain.NotificationOrder,
			map[string]string{"orderId": order.ID.String()}); err != nil {
			log.Printf("[PAYMENT] notify seller for order %s: %v", order.ID, err)
		}
		return result, nil
	}

	if err := s.orders.UpdatePayment(ctx, order.ID, domain.PaymentFailed, order.Status); err != nil {
		return nil, err
	}
	order.PaymentStatus = domain.PaymentFailed
	s.afterPayment(ctx, domain.EventPaymentFailed, order)
	return result, nil
}

func (s *PaymentService) afterPayment(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, domain.NewOrderEvent(eventType, order)); err != nil {
		log.Printf("[PAYMENT] publish %s for order %s: %v", eventType, order.ID, err)
	}
}

func (s *PaymentService) PaymentInfo(ctx context.Context, customerID, orderID uuid.UUID) (*domain.PaymentInfo, error) {
	order, err := s.ownedOrder(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentInfo{
		OrderID:       order.ID,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Status:        order.Status,
	}, nil
}

func (s *PaymentService) PaymentQRCode(ctx context.Context, customerID, orderID uuid.UUID, clientIP string) ([]byte, error) {
	paymentURL, err := s.CreatePaymentURL(ctx, customerID, orderID, clientIP)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(paymentURL)
}
