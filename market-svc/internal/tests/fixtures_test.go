package tests

import (
	"testing"

	"food-marketplace/market-svc/internal/domain"
	"food-marketplace/market-svc/internal/mocks"
	"food-marketplace/market-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type orderDeps struct {
	orders    *mocks.OrderRepository
	catalog   *mocks.CatalogRepository
	carts     *mocks.CartRepository
	notifier  *mocks.Notifier
	publisher *mocks.OrderEventPublisher
	svc       *service.OrderService
}

func newOrderDeps(t *testing.T) *orderDeps {
	d := &orderDeps{
		orders:    mocks.NewOrderRepository(t),
		catalog:   mocks.NewCatalogRepository(t),
		carts:     mocks.NewCartRepository(t),
		notifier:  mocks.NewNotifier(t),
		publisher: mocks.NewOrderEventPublisher(t),
	}
	d.svc = service.NewOrderService(d.orders, d.catalog, d.carts, d.notifier, d.publisher)
	return d
}

// allowSideEffects accepts any push, notification and event; individual tests assert on them when it matters.
func (d *orderDeps) allowSideEffects() {
	d.notifier.On("PushEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	d.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	d.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func approvedStore(sellerID uuid.UUID) *domain.Store {
	return &domain.Store{
		ID:       uuid.New(),
		SellerID: sellerID,
		Name:     "Pho 24",
		Status:   domain.StoreApproved,
	}
}

func menuOf(storeID uuid.UUID, name string, price int64) domain.Menu {
	return domain.Menu{
		ID:      uuid.New(),
		StoreID: storeID,
		Name:    name,
		Price:   decimal.NewFromInt(price),
		Status:  domain.MenuAvailable,
	}
}

func orderFor(customerID, sellerID uuid.UUID, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:            uuid.New(),
		CustomerID:    customerID,
		StoreID:       uuid.New(),
		StoreName:     "Pho 24",
		SellerID:      sellerID,
		TotalPrice:    decimal.NewFromInt(130000),
		Status:        status,
		PaymentMethod: domain.PaymentOnline,
		PaymentStatus: domain.PaymentPending,
	}
}
