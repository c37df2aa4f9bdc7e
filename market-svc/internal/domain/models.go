package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Store struct {
	ID           uuid.UUID   `json:"id"`
	SellerID     uuid.UUID   `json:"seller_id"`
	CategoryID   *uuid.UUID  `json:"category_id,omitempty"`
	CategoryName string      `json:"category_name,omitempty"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Description  string      `json:"description"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	ImageURL     string      `json:"image_url"`
	Status       StoreStatus `json:"status"`
	Rating       float64     `json:"rating"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type StoreFilter struct {
	Status     StoreStatus
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
}

type Menu struct {
	ID           uuid.UUID       `json:"id"`
	StoreID      uuid.UUID       `json:"store_id"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Status       MenuStatus      `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Cart struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// StoreIDs returns the distinct stores referenced by the cart, in first-seen order.
func (c *Cart) StoreIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, item := range c.Items {
		if !seen[item.StoreID] {
			seen[item.StoreID] = true
			ids = append(ids, item.StoreID)
		}
	}
	return ids
}

type CartItem struct {
	ID       uuid.UUID       `json:"id"`
	CartID   uuid.UUID       `json:"cart_id"`
	MenuID   uuid.UUID       `json:"menu_id"`
	Quantity int             `json:"quantity"`
	Note     string          `json:"note"`
	MenuName string          `json:"menu_name"`
	Price    decimal.Decimal `json:"price"`
	StoreID  uuid.UUID       `json:"store_id"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type WishlistItem struct {
	MenuID    uuid.UUID       `json:"menu_id"`
	MenuName  string          `json:"menu_name"`
	Price     decimal.Decimal `json:"price"`
	StoreID   uuid.UUID       `json:"store_id"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
}

type Order struct {
	ID                uuid.UUID       `json:"id"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	StoreID           uuid.UUID       `json:"store_id"`
	StoreName         string          `json:"store_name,omitempty"`
	SellerID          uuid.UUID       `json:"seller_id"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	Status            OrderStatus     `json:"status"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	DeliveryAddress   string          `json:"delivery_address"`
	DeliveryLatitude  *float64        `json:"delivery_latitude,omitempty"`
	DeliveryLongitude *float64        `json:"delivery_longitude,omitempty"`
	Note              string          `json:"note,omitempty"`
	RejectReason      string          `json:"reject_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Details           []OrderDetail   `json:"details"`
}

// ShortID is the prefix shown to people in notifications.
func (o *Order) ShortID() string {
	return o.ID.String()[:8]
}

type OrderDetail struct {
	ID       uuid.UUID       `json:"id"`
	OrderID  uuid.UUID       `json:"order_id"`
	MenuID   uuid.UUID       `json:"menu_id"`
	MenuName string          `json:"menu_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Note     string          `json:"note,omitempty"`
}

func (d OrderDetail) Subtotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

type OrderItemInput struct {
	MenuID   uuid.UUID `json:"menu_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=1,max=100"`
	Note     string    `json:"note" validate:"max=500"`
}

type DeliveryInfo struct {
	Address       string   `json:"delivery_address" validate:"required,max=500"`
	Latitude      *float64 `json:"delivery_latitude"`
	Longitude     *float64 `json:"delivery_longitude"`
	PaymentMethod string   `json:"payment_method"`
	Note          string   `json:"note" validate:"max=500"`
}

type CreateOrderInput struct {
	StoreID uuid.UUID        `json:"store_id" validate:"required"`
	Items   []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	DeliveryInfo
}

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	Data      json.RawMessage  `json:"data,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

type PaymentInfo struct {
	OrderID       uuid.UUID       `json:"order_id"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Status        OrderStatus     `json:"status"`
}

type PaymentCallbackResult struct {
	OrderID      uuid.UUID `json:"order_id"`
	Success      bool      `json:"success"`
	ResponseCode string    `json:"response_code"`
}
