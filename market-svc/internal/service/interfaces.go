package service

import (
	"context"
	"io"
	"net/url"

	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	CreateStore(ctx context.Context, store *domain.Store) error
	GetStore(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	ListStores(ctx context.Context, filter domain.StoreFilter) ([]domain.Store, error)
	UpdateStore(ctx context.Context, store *domain.Store) error
	SetStoreStatus(ctx context.Context, id uuid.UUID, status domain.StoreStatus) error
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error)
	GetMenusByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Menu, error)
	ListMenus(ctx context.Context, storeID uuid.UUID, onlyAvailable bool) ([]domain.Menu, error)
	UpdateMenu(ctx context.Context, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, storeID, menuID uuid.UUID) (int64, error)
	SetStoreImage(ctx context.Context, id uuid.UUID, imageURL string) error
	SetMenuImage(ctx context.Context, id uuid.UUID, imageURL string) error
}

// DiscoveryRepository reads catalog rows with the review and order counts search ranks by.
type DiscoveryRepository interface {
	SearchStores(ctx context.Context, q domain.StoreSearch) ([]domain.StoreResult, error)
	SearchMenus(ctx context.Context, q domain.MenuSearch) ([]domain.MenuResult, error)
	SuggestNames(ctx context.Context, term string, limit int) ([]string, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type CartRepository interface {
	GetOrCreateCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error)
	UpsertCartItem(ctx context.Context, cartID, menuID uuid.UUID, quantity int, note string) error
	UpdateCartItem(ctx context.Context, cartID, itemID uuid.UUID, quantity int, note string) (int64, error)
	RemoveCartItem(ctx context.Context, cartID, itemID uuid.UUID) (int64, error)
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type WishlistRepository interface {
	AddWishlist(ctx context.Context, customerID, menuID uuid.UUID) error
	RemoveWishlist(ctx context.Context, customerID, menuID uuid.UUID) (int64, error)
	ListWishlist(ctx context.Context, customerID uuid.UUID) ([]domain.WishlistItem, error)
	InWishlist(ctx context.Context, customerID, menuID uuid.UUID) (bool, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	ListStoreOrders(ctx context.Context, storeID uuid.UUID, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, reason string) error
	UpdatePayment(ctx context.Context, id uuid.UUID, paymentStatus domain.PaymentStatus, status domain.OrderStatus) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

// Pusher delivers an addressed real-time message to one connected user.
type Pusher interface {
	Push(ctx context.Context, userID uuid.UUID, msg domain.PushMessage) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PaymentGateway interface {
	BuildPaymentURL(req PaymentRequest) string
	VerifyCallback(params url.Values) bool
}

// ImageStore keeps uploaded images and returns the public URL they are served from.
type ImageStore interface {
	Save(name string, content io.Reader) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message string, kind domain.NotificationType, data interface{}) error
	PushEvent(ctx context.Context, userID uuid.UUID, event string, payload interface{})
}

type CatalogServiceInterface interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	RegisterStore(ctx context.Context, sellerID uuid.UUID, store *domain.Store) error
	ListStores(ctx context.Context, categoryID *uuid.UUID) ([]domain.Store, error)
	GetStore(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*domain.Store, error)
	MyStores(ctx context.Context, sellerID uuid.UUID) ([]domain.Store, error)
	UpdateStore(ctx context.Context, sellerID uuid.UUID, store *domain.Store) error
	CloseStore(ctx context.Context, sellerID, storeID uuid.UUID) error
	ListPendingStores(ctx context.Context) ([]domain.Store, error)
	ApproveStore(ctx context.Context, storeID uuid.UUID) error
	RejectStore(ctx context.Context, storeID uuid.UUID) error
	CreateMenu(ctx context.Context, sellerID uuid.UUID, menu *domain.Menu) error
	GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error)
	ListMenus(ctx context.Context, caller *auth.Identity, storeID uuid.UUID) ([]domain.Menu, error)
	UpdateMenu(ctx context.Context, sellerID uuid.UUID, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, sellerID, menuID uuid.UUID) error
	SetStoreImage(ctx context.Context, sellerID, storeID uuid.UUID, imageURL string) error
	SetMenuImage(ctx context.Context, sellerID, menuID uuid.UUID, imageURL string) error
}

type DiscoveryServiceInterface interface {
	SearchStores(ctx context.Context, q domain.StoreSearch) (*domain.Page[domain.StoreResult], error)
	PopularStores(ctx context.Context, take int) ([]domain.StoreResult, error)
	SearchMenus(ctx context.Context, q domain.MenuSearch) (*domain.Page[domain.MenuResult], error)
	PopularMenus(ctx context.Context, take int) ([]domain.MenuResult, error)
	MenusByCategory(ctx context.Context, categoryID uuid.UUID, take int) ([]domain.MenuResult, error)
	Search(ctx context.Context, term string, take int) (*domain.SearchResults, error)
	Suggestions(ctx context.Context, query string, take int) ([]string, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type CartServiceInterface interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID, menuID uuid.UUID, quantity int, note string) (*domain.Cart, error)
	UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, quantity int, note string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*domain.Cart, error)
	Clear(ctx context.Context, customerID uuid.UUID) error
}

type WishlistServiceInterface interface {
	Add(ctx context.Context, customerID, menuID uuid.UUID) error
	Remove(ctx context.Context, customerID, menuID uuid.UUID) error
	List(ctx context.Context, customerID uuid.UUID) ([]domain.WishlistItem, error)
	Toggle(ctx context.Context, customerID, menuID uuid.UUID) (bool, error)
	Contains(ctx context.Context, customerID, menuID uuid.UUID) (bool, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, input domain.CreateOrderInput) (*domain.Order, error)
	CreateOrderFromCart(ctx context.Context, customerID uuid.UUID, info domain.DeliveryInfo) (*domain.Order, error)
	GetOrder(ctx context.Context, caller auth.Identity, orderID uuid.UUID) (*domain.Order, error)
	ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	ListStoreOrders(ctx context.Context, sellerID, storeID uuid.UUID, status string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, status string) (*domain.Order, error)
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*domain.Order, error)
	RejectOrder(ctx context.Context, sellerID, orderID uuid.UUID, reason string) (*domain.Order, error)
}

type PaymentServiceInterface interface {
	CreatePaymentURL(ctx context.Context, customerID, orderID uuid.UUID, clientIP string) (string, error)
	HandleCallback(ctx context.Context, params url.Values) (*domain.PaymentCallbackResult, error)
	PaymentInfo(ctx context.Context, customerID, orderID uuid.UUID) (*domain.PaymentInfo, error)
	PaymentQRCode(ctx context.Context, customerID, orderID uuid.UUID, clientIP string) ([]byte, error)
}

type NotificationServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

var (
	_ CatalogServiceInterface      = (*CatalogService)(nil)
	_ CartServiceInterface         = (*CartService)(nil)
	_ WishlistServiceInterface     = (*WishlistService)(nil)
	_ OrderServiceInterface        = (*OrderService)(nil)
	_ PaymentServiceInterface      = (*PaymentService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ Notifier                     = (*NotificationService)(nil)
	_ PaymentGateway               = (*VNPayGateway)(nil)
)
