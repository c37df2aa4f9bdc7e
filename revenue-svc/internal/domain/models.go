package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period symbols accepted by the reports. Anything else resolves to a trailing window.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

const UncategorizedLabel = "Uncategorized"

type Period struct {
	Name  string    `json:"period"`
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

type OrderItem struct {
	MenuName     string          `json:"name"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

func (i OrderItem) SubTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CompletedOrder is the read-side view of a completed order used by every report.
type CompletedOrder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	TotalPrice    decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
	Items         []OrderItem
}

type Overview struct {
	StoreID           uuid.UUID       `json:"store_id"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCommission   decimal.Decimal `json:"total_commission"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type DailyRevenue struct {
	Date       time.Time       `json:"date"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
	NetRevenue decimal.Decimal `json:"net_revenue"`
}

type OrderRevenue struct {
	OrderID     uuid.UUID       `json:"order_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	OrderDate   time.Time       `json:"order_date"`
	OrderAmount decimal.Decimal `json:"order_amount"`
	Commission  decimal.Decimal `json:"commission"`
	NetRevenue  decimal.Decimal `json:"net_revenue"`
}

type CategoryRevenue struct {
	CategoryName  string          `json:"category_name"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalQuantity int             `json:"total_quantity"`
	Commission    decimal.Decimal `json:"commission"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
	ItemCount     int             `json:"item_count"`
}

type PaymentMethodRevenue struct {
	PaymentMethod string          `json:"payment_method"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	OrderCount    int             `json:"order_count"`
	Commission    decimal.Decimal `json:"commission"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
}

type ReportSummary struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCommission   decimal.Decimal `json:"total_commission"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type ReportItem struct {
	OrderItem
	SubTotal decimal.Decimal `json:"sub_total"`
}

type ReportOrder struct {
	OrderRevenue
	PaymentMethod string       `json:"payment_method"`
	Items         []ReportItem `json:"items"`
}

type DetailedReport struct {
	StoreID   uuid.UUID     `json:"store_id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Summary   ReportSummary `json:"summary"`
	Orders    []ReportOrder `json:"orders"`
}
