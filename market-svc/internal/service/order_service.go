package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidItemSet = apperr.Validation("invalid item set")

type OrderService struct {
	orders    OrderRepository
	catalog   CatalogRepository
	carts     CartRepository
	notifier  Notifier
	publisher OrderEventPublisher
}

func NewOrderService(orders OrderRepository, catalog CatalogRepository, carts CartRepository, notifier Notifier, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		carts:     carts,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input domain.CreateOrderInput) (*domain.Order, error) {
	order, err := s.buildOrder(ctx, customerID, input)
	if err != nil {
		return nil, err
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.announceNewOrder(ctx, order)
	return order, nil
}

// CreateOrderFromCart checks out the whole cart. The cart is only cleared once the
// order has been stored, so any earlier failure leaves it as it was.
func (s *OrderService) CreateOrderFromCart(ctx context.Context, customerID uuid.UUID, info domain.DeliveryInfo) (*domain.Order, error) {
	cart, err := s.carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	storeIDs := cart.StoreIDs()
	if len(storeIDs) > 1 {
		return nil, apperr.Validation("cart contains items from %d stores; an order may only contain items from one store", len(storeIDs))
	}

	input := domain.CreateOrderInput{StoreID: storeIDs[0], DeliveryInfo: info}
	for _, item := range cart.Items {
		input.Items = append(input.Items, domain.OrderItemInput{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Note:     item.Note,
		})
	}

	order, err := s.buildOrder(ctx, customerID, input)
	if err != nil {
		return nil, err
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order from cart: %w", err)
	}

	if err := s.carts.ClearCart(ctx, cart.ID); err != nil {
		log.Printf("[ORDER] order %s created but cart %s was not cleared: %v", order.ID, cart.ID, err)
	}

	s.announceNewOrder(ctx, order)
	return order, nil
}

// buildOrder prices every line from the menu as it is right now and snapshots
// that price into the detail.
func (s *OrderService) buildOrder(ctx context.Context, customerID uuid.UUID, input domain.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperr.Validation("order has no items")
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, apperr.Validation("delivery address is required")
	}

	store, err := s.catalog.GetStore(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store.Status != domain.StoreApproved {
		return nil, apperr.Validation("store %s is not accepting orders", store.Name)
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if err := validateLine(item.Quantity, item.Note); err != nil {
			return nil, err
		}
		ids = append(ids, item.MenuID)
	}

	menus, err := s.catalog.GetMenusByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Menu, len(menus))
	for _, menu := range menus {
		byID[menu.ID] = menu
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:                uuid.New(),
		CustomerID:        customerID,
		StoreID:           store.ID,
		StoreName:         store.Name,
		SellerID:          store.SellerID,
		Status:            domain.OrderPending,
		PaymentMethod:     domain.ParsePaymentMethod(input.PaymentMethod),
		PaymentStatus:     domain.PaymentPending,
		DeliveryAddress:   strings.TrimSpace(input.Address),
		DeliveryLatitude:  input.Latitude,
		DeliveryLongitude: input.Longitude,
		Note:              input.Note,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	total := decimal.Zero
	for _, item := range input.Items {
		menu, ok := byID[item.MenuID]
		if !ok || menu.StoreID != store.ID || menu.Status != domain.MenuAvailable {
			return nil, ErrInvalidItemSet
		}
		detail := domain.OrderDetail{
			ID:       uuid.New(),
			OrderID:  order.ID,
			MenuID:   menu.ID,
			MenuName: menu.Name,
			Quantity: item.Quantity,
			Price:    menu.Price,
			Note:     item.Note,
		}
		total = total.Add(detail.Subtotal())
		order.Details = append(order.Details, detail)
	}
	order.TotalPrice = total

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, caller auth.Identity, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if caller.Is(auth.RoleAdmin) || caller.UserID == order.CustomerID || caller.UserID == order.SellerID {
		return order, nil
	}
	return nil, apperr.Forbidden("order %s is not visible to this user", orderID)
}

func (s *OrderService) ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	return s.orders.ListCustomerOrders(ctx, customerID)
}

func (s *OrderService) ListStoreOrders(ctx context.Context, sellerID, storeID uuid.UUID, status string) ([]domain.Order, error) {
	store, err := s.catalog.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.SellerID != sellerID {
		return nil, apperr.Forbidden("store %s belongs to another seller", storeID)
	}

	var filter domain.OrderStatus
	if status != "" {
		if filter, err = domain.ParseOrderStatus(status); err != nil {
			return nil, err
		}
	}
	return s.orders.ListStoreOrders(ctx, storeID, filter)
}

// UpdateOrderStatus lets the owning seller set any known status. Lifecycle order
// is deliberately not enforced here; only cancel and reject are gated.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, status string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, apperr.Forbidden("order %s belongs to another store", orderID)
	}

	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateOrderStatus(ctx, orderID, next, ""); err != nil {
		return nil, err
	}
	order.Status = next
	order.UpdatedAt = time.Now().UTC()

	s.notifier.PushEvent(ctx, order.CustomerID, domain.PushOrderStatus, map[string]interface{}{
		"orderId": order.ID,
		"status":  order.Status,
	})
	s.notify(ctx, order.CustomerID, "Order status updated",
		fmt.Sprintf("Order #%s moved to status %s", order.ShortID(), order.Status), order)
	s.publish(ctx, domain.EventOrderStatusChanged, order)

	return order, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, apperr.Forbidden("order %s belongs to another customer", orderID)
	}
	if !order.Status.Withdrawable() {
		return nil, apperr.InvalidState("order in status %s can no longer be cancelled", order.Status)
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, domain.OrderCancelled, ""); err != nil {
		return nil, err
	}
	order.Status = domain.OrderCancelled
	order.UpdatedAt = time.Now().UTC()

	s.notifier.PushEvent(ctx, order.SellerID, domain.PushOrderCancelled, map[string]interface{}{
		"orderId": order.ID,
	})
	s.notify(ctx, order.SellerID, "Order cancelled",
		fmt.Sprintf("Customer cancelled order #%s", order.ShortID()), order)
	s.publish(ctx, domain.EventOrderCancelled, order)

	return order, nil
}

func (s *OrderService) RejectOrder(ctx context.Context, sellerID, orderID uuid.UUID, reason string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, apperr.Forbidden("order %s belongs to another store", orderID)
	}
	if !order.Status.Withdrawable() {
		return nil, apperr.InvalidState("order in status %s can no longer be rejected", order.Status)
	}

	reason = strings.TrimSpace(reason)
	if err := s.orders.UpdateOrderStatus(ctx, orderID, domain.OrderRejected, reason); err != nil {
		return nil, err
	}
	order.Status = domain.OrderRejected
	order.RejectReason = reason
	order.UpdatedAt = time.Now().UTC()

	message := fmt.Sprintf("Order #%s was rejected by the store", order.ShortID())
	if reason != "" {
		message = fmt.Sprintf("Order #%s rejected. Reason: %s", order.ShortID(), reason)
	}
	s.notifier.PushEvent(ctx, order.CustomerID, domain.PushOrderRejected, map[string]interface{}{
		"orderId": order.ID,
		"reason":  reason,
	})
	s.notify(ctx, order.CustomerID, "Order rejected", message, order)
	s.publish(ctx, domain.EventOrderRejected, order)

	return order, nil
}

func (s *OrderService) announceNewOrder(ctx context.Context, order *domain.Order) {
	s.notifier.PushEvent(ctx, order.SellerID, domain.PushNewOrder, order)
	s.notify(ctx, order.SellerID, "New order", fmt.Sprintf("New order #%s", order.ShortID()), order)
	s.publish(ctx, domain.EventOrderCreated, order)
}

func (s *OrderService) notify(ctx context.Context, userID uuid.UUID, title, message string, order *domain.Order) {
	data := map[string]string{"orderId": order.ID.String()}
	if err := s.notifier.Notify(ctx, userID, title, message, domain.NotificationOrder, data); err != nil {
		log.Printf("[ORDER] notification for order %s not stored: %v", order.ID, err)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, domain.NewOrderEvent(eventType, order)); err != nil {
		log.Printf("[ORDER] publish %s for order %s: %v", eventType, order.ID, err)
	}
}
