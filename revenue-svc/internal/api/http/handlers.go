package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/revenue-svc/internal/domain"
	"food-marketplace/revenue-svc/internal/service"
	"food-marketplace/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Revenue service.RevenueServiceInterface
}

func NewHandler(svc service.RevenueServiceInterface) *Handler {
	return &Handler{Revenue: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	store := r.PathPrefix("/api/revenue/store/{storeId}").Subrouter()
	store.HandleFunc("/overview", h.overview).Methods("GET")
	store.HandleFunc("/daily", h.daily).Methods("GET")
	store.HandleFunc("/top-orders", h.topOrders).Methods("GET")
	store.HandleFunc("/by-category", h.byCategory).Methods("GET")
	store.HandleFunc("/by-payment", h.byPayment).Methods("GET")
	store.HandleFunc("/detailed-report", h.detailedReport).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "healthy", map[string]interface{}{
		"service":   "revenue-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// authorize resolves the store from the path and checks the caller is the seller owning it.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return uuid.Nil, false
	}
	raw := mux.Vars(r)["storeId"]
	storeID, err := uuid.Parse(raw)
	if err != nil {
		response.Error(w, apperr.Validation("invalid storeId %q", raw))
		return uuid.Nil, false
	}
	if err := h.Revenue.EnsureOwner(r.Context(), caller.UserID, storeID); err != nil {
		response.Error(w, err)
		return uuid.Nil, false
	}
	return storeID, true
}

func period(r *http.Request) string {
	if p := r.URL.Query().Get("period"); p != "" {
		return p
	}
	return domain.PeriodMonth
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	data, err := h.Revenue.Overview(r.Context(), storeID, period(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "revenue overview", data)
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	data, err := h.Revenue.Daily(r.Context(), storeID, period(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "daily revenue", data)
}

func (h *Handler) topOrders(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	take := service.DefaultTopOrders
	if raw := r.URL.Query().Get("take"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(w, apperr.Validation("take must be a positive integer"))
			return
		}
		take = n
	}
	data, err := h.Revenue.TopOrders(r.Context(), storeID, period(r), take)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "top orders", data)
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	data, err := h.Revenue.ByCategory(r.Context(), storeID, period(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "revenue by category", data)
}

func (h *Handler) byPayment(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	data, err := h.Revenue.ByPaymentMethod(r.Context(), storeID, period(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "revenue by payment method", data)
}

func parseDate(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.Validation("invalid %s %q", key, raw)
}

func (h *Handler) detailedReport(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	start, err := parseDate(r, "startDate")
	if err != nil {
		response.Error(w, err)
		return
	}
	end, err := parseDate(r, "endDate")
	if err != nil {
		response.Error(w, err)
		return
	}
	report, err := h.Revenue.DetailedReport(r.Context(), storeID, start, end)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "detailed revenue report", report)
}
