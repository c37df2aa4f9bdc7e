package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	"food-marketplace/rate-svc/internal/domain"
	"food-marketplace/rate-svc/internal/service"
	"food-marketplace/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Reviews service.ReviewServiceInterface
}

func NewHandler(reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Reviews: reviews}
}

type respondRequest struct {
	Response string `json:"response" validate:"required,max=1000"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/reviews/order/{orderId}", h.getOrderReview).Methods("GET")
	r.HandleFunc("/api/reviews/store/{storeId}", h.listStoreReviews).Methods("GET")
	r.HandleFunc("/api/reviews/store/{storeId}/statistics", h.storeStatistics).Methods("GET")
	r.HandleFunc("/api/reviews/menu/{menuId}", h.listMenuReviews).Methods("GET")
	r.HandleFunc("/api/reviews/{id}", h.updateReview).Methods("PUT")
	r.HandleFunc("/api/reviews/{id}", h.deleteReview).Methods("DELETE")
	r.HandleFunc("/api/reviews/{id}/response", h.respond).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "healthy", map[string]interface{}{
		"service":   "rate-svc",
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

func pageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	return page, pageSize
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	var input domain.ReviewInput
	if !response.Decode(w, r, &input) {
		return
	}
	review, err := h.Reviews.Create(r.Context(), caller.UserID, input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "review created", review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var input domain.ReviewUpdate
	if !response.Decode(w, r, &input) {
		return
	}
	review, err := h.Reviews.Update(r.Context(), caller.UserID, id, input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "review updated", review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer, auth.RoleAdmin)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.Reviews.Delete(r.Context(), caller, id); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "review deleted", nil)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req respondRequest
	if !response.Decode(w, r, &req) {
		return
	}
	review, err := h.Reviews.Respond(r.Context(), caller.UserID, id, req.Response)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "response saved", review)
}

func (h *Handler) getOrderReview(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		response.Error(w, err)
		return
	}
	review, err := h.Reviews.GetByOrder(r.Context(), orderID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "review", review)
}

func (h *Handler) listStoreReviews(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeId")
	if err != nil {
		response.Error(w, err)
		return
	}
	page, pageSize := pageParams(r)
	reviews, err := h.Reviews.ListStoreReviews(r.Context(), storeID, page, pageSize)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "reviews", reviews)
}

func (h *Handler) listMenuReviews(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathID(r, "menuId")
	if err != nil {
		response.Error(w, err)
		return
	}
	page, pageSize := pageParams(r)
	reviews, err := h.Reviews.ListMenuReviews(r.Context(), menuID, page, pageSize)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "reviews", reviews)
}

func (h *Handler) storeStatistics(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeId")
	if err != nil {
		response.Error(w, err)
		return
	}
	stats, err := h.Reviews.Statistics(r.Context(), storeID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "review statistics", stats)
}
