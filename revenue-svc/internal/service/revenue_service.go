package service

import (
	"context"
	"log"
	"sort"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/revenue-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultTopOrders = 10

type RevenueService struct {
	repo  RevenueRepository
	cache OverviewCache
	now   func() time.Time
}

func NewRevenueService(repo RevenueRepository, cache OverviewCache) *RevenueService {
	return &RevenueService{repo: repo, cache: cache, now: time.Now}
}

// WithClock swaps the time source for period resolution.
func (s *RevenueService) WithClock(now func() time.Time) *RevenueService {
	s.now = now
	return s
}

func (s *RevenueService) EnsureOwner(ctx context.Context, sellerID, storeID uuid.UUID) error {
	owner, err := s.repo.GetStoreOwner(ctx, storeID)
	if err != nil {
		return err
	}
	if owner != sellerID {
		return apperr.Forbidden("store %s belongs to another seller", storeID)
	}
	return nil
}

func (s *RevenueService) ordersFor(ctx context.Context, storeID uuid.UUID, period string) (domain.Period, []domain.CompletedOrder, error) {
	p := ResolvePeriod(period, s.now())
	orders, err := s.repo.CompletedOrders(ctx, storeID, p.Start, p.End)
	return p, orders, err
}

func (s *RevenueService) Overview(ctx context.Context, storeID uuid.UUID, period string) (*domain.Overview, error) {
	p := ResolvePeriod(period, s.now())
	if cached, ok, err := s.cache.GetOverview(ctx, storeID, p); err != nil {
		log.Printf("[REVENUE] overview cache read failed for store %s: %v", storeID, err)
	} else if ok {
		return cached, nil
	}

	orders, err := s.repo.CompletedOrders(ctx, storeID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	summary := summarize(orders)
	overview := &domain.Overview{
		StoreID:           storeID,
		StartDate:         p.Start,
		EndDate:           p.End,
		TotalOrders:       summary.TotalOrders,
		TotalRevenue:      summary.TotalRevenue,
		TotalCommission:   summary.TotalCommission,
		NetRevenue:        summary.NetRevenue,
		CommissionRate:    summary.CommissionRate,
		AverageOrderValue: summary.AverageOrderValue,
	}
	if err := s.cache.SetOverview(ctx, storeID, p, overview); err != nil {
		log.Printf("[REVENUE] overview cache write failed for store %s: %v", storeID, err)
	}
	return overview, nil
}

func summarize(orders []domain.CompletedOrder) domain.ReportSummary {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}
	summary := domain.ReportSummary{
		TotalOrders:       len(orders),
		TotalRevenue:      total,
		TotalCommission:   Commission(total),
		NetRevenue:        NetRevenue(total),
		CommissionRate:    CommissionRate,
		AverageOrderValue: decimal.Zero,
	}
	if len(orders) > 0 {
		summary.AverageOrderValue = total.Div(decimal.NewFromInt(int64(len(orders)))).RoundBank(2)
	}
	return summary
}

func (s *RevenueService) Daily(ctx context.Context, storeID uuid.UUID, period string) ([]domain.DailyRevenue, error) {
	_, orders, err := s.ordersFor(ctx, storeID, period)
	if err != nil {
		return nil, err
	}

	byDay := map[time.Time]*domain.DailyRevenue{}
	for _, o := range orders {
		day := time.Date(o.CreatedAt.Year(), o.CreatedAt.Month(), o.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
		row, ok := byDay[day]
		if !ok {
			row = &domain.DailyRevenue{Date: day, Revenue: decimal.Zero, Commission: decimal.Zero, NetRevenue: decimal.Zero}
			byDay[day] = row
		}
		row.OrderCount++
		row.Revenue = row.Revenue.Add(o.TotalPrice)
		row.Commission = row.Commission.Add(Commission(o.TotalPrice))
		row.NetRevenue = row.NetRevenue.Add(NetRevenue(o.TotalPrice))
	}

	daily := make([]domain.DailyRevenue, 0, len(byDay))
	for _, row := range byDay {
		daily = append(daily, *row)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return daily, nil
}

func orderRevenue(o domain.CompletedOrder) domain.OrderRevenue {
	return domain.OrderRevenue{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.CreatedAt,
		OrderAmount: o.TotalPrice,
		Commission:  Commission(o.TotalPrice),
		NetRevenue:  NetRevenue(o.TotalPrice),
	}
}

func (s *RevenueService) TopOrders(ctx context.Context, storeID uuid.UUID, period string, take int) ([]domain.OrderRevenue, error) {
	if take <= 0 {
		take = DefaultTopOrders
	}
	_, orders, err := s.ordersFor(ctx, storeID, period)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].TotalPrice.GreaterThan(orders[j].TotalPrice) })
	if len(orders) > take {
		orders = orders[:take]
	}
	top := make([]domain.OrderRevenue, 0, len(orders))
	for _, o := range orders {
		top = append(top, orderRevenue(o))
	}
	return top, nil
}

func (s *RevenueService) ByCategory(ctx context.Context, storeID uuid.UUID, period string) ([]domain.CategoryRevenue, error) {
	_, orders, err := s.ordersFor(ctx, storeID, period)
	if err != nil {
		return nil, err
	}

	groups := map[string]*domain.CategoryRevenue{}
	for _, o := range orders {
		for _, item := range o.Items {
			row, ok := groups[item.CategoryName]
			if !ok {
				row = &domain.CategoryRevenue{CategoryName: item.CategoryName, TotalRevenue: decimal.Zero}
				groups[item.CategoryName] = row
			}
			row.TotalRevenue = row.TotalRevenue.Add(item.SubTotal())
			row.TotalQuantity += item.Quantity
			row.ItemCount++
		}
	}

	result := make([]domain.CategoryRevenue, 0, len(groups))
	for _, row := range groups {
		row.Commission = Commission(row.TotalRevenue)
		row.NetRevenue = NetRevenue(row.TotalRevenue)
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TotalRevenue.Equal(result[j].TotalRevenue) {
			return result[i].TotalRevenue.GreaterThan(result[j].TotalRevenue)
		}
		return result[i].CategoryName < result[j].CategoryName
	})
	return result, nil
}

func (s *RevenueService) ByPaymentMethod(ctx context.Context, storeID uuid.UUID, period string) ([]domain.PaymentMethodRevenue, error) {
	_, orders, err := s.ordersFor(ctx, storeID, period)
	if err != nil {
		return nil, err
	}

	groups := map[string]*domain.PaymentMethodRevenue{}
	for _, o := range orders {
		row, ok := groups[o.PaymentMethod]
		if !ok {
			row = &domain.PaymentMethodRevenue{PaymentMethod: o.PaymentMethod, TotalRevenue: decimal.Zero}
			groups[o.PaymentMethod] = row
		}
		row.TotalRevenue = row.TotalRevenue.Add(o.TotalPrice)
		row.OrderCount++
	}

	result := make([]domain.PaymentMethodRevenue, 0, len(groups))
	for _, row := range groups {
		row.Commission = Commission(row.TotalRevenue)
		row.NetRevenue = NetRevenue(row.TotalRevenue)
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TotalRevenue.Equal(result[j].TotalRevenue) {
			return result[i].TotalRevenue.GreaterThan(result[j].TotalRevenue)
		}
		return result[i].PaymentMethod < result[j].PaymentMethod
	})
	return result, nil
}

// DetailedReport defaults to the trailing 30 days when either bound is missing.
func (s *RevenueService) DetailedReport(ctx context.Context, storeID uuid.UUID, start, end *time.Time) (*domain.DetailedReport, error) {
	now := s.now().UTC()
	from := now.AddDate(0, 0, -trailingWindowDays)
	to := now
	if start != nil {
		from = start.UTC()
	}
	if end != nil {
		to = end.UTC()
	}
	if to.Before(from) {
		return nil, apperr.Validation("end date %s is before start date %s", to.Format(time.RFC3339), from.Format(time.RFC3339))
	}

	orders, err := s.repo.CompletedOrders(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.DetailedReport{
		StoreID:   storeID,
		StartDate: from,
		EndDate:   to,
		Summary:   summarize(orders),
		Orders:    make([]domain.ReportOrder, 0, len(orders)),
	}
	for _, o := range orders {
		entry := domain.ReportOrder{
			OrderRevenue:  orderRevenue(o),
			PaymentMethod: o.PaymentMethod,
			Items:         make([]domain.ReportItem, 0, len(o.Items)),
		}
		for _, item := range o.Items {
			entry.Items = append(entry.Items, domain.ReportItem{OrderItem: item, SubTotal: item.SubTotal()})
		}
		report.Orders = append(report.Orders, entry)
	}
	sort.SliceStable(report.Orders, func(i, j int) bool {
		return report.Orders[i].OrderDate.After(report.Orders[j].OrderDate)
	})
	return report, nil
}
