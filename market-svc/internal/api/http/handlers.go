package httpapi

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/market-svc/internal/service"
	"food-marketplace/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	Catalog       service.CatalogServiceInterface
	Discovery     service.DiscoveryServiceInterface
	Carts         service.CartServiceInterface
	Wishlist      service.WishlistServiceInterface
	Orders        service.OrderServiceInterface
	Payments      service.PaymentServiceInterface
	Notifications service.NotificationServiceInterface
	Images        service.ImageStore
	FrontendURL   string
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	discovery service.DiscoveryServiceInterface,
	carts service.CartServiceInterface,
	wishlist service.WishlistServiceInterface,
	orders service.OrderServiceInterface,
	payments service.PaymentServiceInterface,
	notifications service.NotificationServiceInterface,
	images service.ImageStore,
	frontendURL string,
) *Handler {
	return &Handler{
		Catalog:       catalog,
		Discovery:     discovery,
		Carts:         carts,
		Wishlist:      wishlist,
		Orders:        orders,
		Payments:      payments,
		Notifications: notifications,
		Images:        images,
		FrontendURL:   strings.TrimSuffix(frontendURL, "/"),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")

	r.HandleFunc("/api/stores", h.listStores).Methods("GET")
	r.HandleFunc("/api/stores", h.registerStore).Methods("POST")
	r.HandleFunc("/api/stores/mine", h.myStores).Methods("GET")
	r.HandleFunc("/api/stores/search", h.searchStores).Methods("GET")
	r.HandleFunc("/api/stores/popular", h.popularStores).Methods("GET")
	r.HandleFunc("/api/stores/{id}", h.getStore).Methods("GET")
	r.HandleFunc("/api/stores/{id}", h.updateStore).Methods("PUT")
	r.HandleFunc("/api/stores/{id}/close", h.closeStore).Methods("POST")
	r.HandleFunc("/api/stores/{id}/image", h.uploadStoreImage).Methods("POST")
	r.HandleFunc("/api/stores/{storeId}/menus", h.listMenus).Methods("GET")
	r.HandleFunc("/api/stores/{storeId}/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/stores/{storeId}/orders", h.listStoreOrders).Methods("GET")

	r.HandleFunc("/api/admin/dashboard-stats", h.dashboardStats).Methods("GET")
	r.HandleFunc("/api/admin/stores/pending", h.listPendingStores).Methods("GET")
	r.HandleFunc("/api/admin/stores/{id}/approve", h.approveStore).Methods("POST")
	r.HandleFunc("/api/admin/stores/{id}/reject", h.rejectStore).Methods("POST")

	r.HandleFunc("/api/menus/search", h.searchMenus).Methods("GET")
	r.HandleFunc("/api/menus/popular", h.popularMenus).Methods("GET")
	r.HandleFunc("/api/menus/category/{categoryId}", h.menusByCategory).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.updateMenu).Methods("PUT")
	r.HandleFunc("/api/menus/{id}", h.deleteMenu).Methods("DELETE")
	r.HandleFunc("/api/menus/{id}/image", h.uploadMenuImage).Methods("POST")

	r.HandleFunc("/api/search", h.search).Methods("GET")
	r.HandleFunc("/api/search/suggestions", h.suggestions).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/wishlist", h.listWishlist).Methods("GET")
	r.HandleFunc("/api/wishlist", h.addWishlist).Methods("POST")
	r.HandleFunc("/api/wishlist/{menuId}", h.removeWishlist).Methods("DELETE")
	r.HandleFunc("/api/wishlist/{menuId}/toggle", h.toggleWishlist).Methods("POST")
	r.HandleFunc("/api/wishlist/{menuId}/check", h.checkWishlist).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/from-cart", h.createOrderFromCart).Methods("POST")
	r.HandleFunc("/api/orders/my", h.myOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/reject", h.rejectOrder).Methods("POST")

	r.HandleFunc("/api/payments/vnpay-return", h.paymentReturn).Methods("GET")
	r.HandleFunc("/api/payments/{orderId}/url", h.createPaymentURL).Methods("POST")
	r.HandleFunc("/api/payments/{orderId}", h.paymentInfo).Methods("GET")
	r.HandleFunc("/api/payments/{orderId}/qrcode", h.paymentQRCode).Methods("GET")

	r.HandleFunc("/api/notifications", h.listNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/unread-count", h.unreadCount).Methods("GET")
	r.HandleFunc("/api/notifications/read-all", h.markAllRead).Methods("PUT")
	r.HandleFunc("/api/notifications/{id}/read", h.markRead).Methods("PUT")
	r.HandleFunc("/api/notifications/{id}", h.deleteNotification).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "healthy", map[string]interface{}{
		"service":   "market-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func pathID(r *http.Request, key string) (uuid.UUID, error) {
	raw := mux.Vars(r)[key]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid %s %q", key, raw)
	}
	return id, nil
}

func queryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return def
}

// clientIP prefers the address the gateway forwarded.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
