package httpapi

import (
	"fmt"
	"net/http"
	"net/url"

	"food-marketplace/auth"
	"food-marketplace/market-svc/internal/domain"
	"food-marketplace/response"
)

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	var input domain.CreateOrderInput
	if !response.Decode(w, r, &input) {
		return
	}
	order, err := h.Orders.CreateOrder(r.Context(), caller.UserID, input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "order created", order)
}

func (h *Handler) createOrderFromCart(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	var info domain.DeliveryInfo
	if !response.Decode(w, r, &info) {
		return
	}
	order, err := h.Orders.CreateOrderFromCart(r.Context(), caller.UserID, info)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "order created", order)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	orders, err := h.Orders.ListMyOrders(r.Context(), caller.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "orders", orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	order, err := h.Orders.GetOrder(r.Context(), caller, id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "order", order)
}

func (h *Handler) listStoreOrders(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleSeller)
	if err != nil {
		response.Error(w, err)
		return
	}
	storeID, err := pathID(r, "storeId")
	if err != nil {
		response.Error(w, err)
		return
	}
	orders, err := h.Orders.ListStoreOrders(r.Context(), caller.UserID, storeID, r.URL.Query().Get("status"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "orders", orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
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
	var req statusRequest
	if !response.Decode(w, r, &req) {
		return
	}
	order, err := h.Orders.UpdateOrderStatus(r.Context(), caller.UserID, id, req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "order status updated", order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
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
	order, err := h.Orders.CancelOrder(r.Context(), caller.UserID, id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "order cancelled", order)
}

func (h *Handler) rejectOrder(w http.ResponseWriter, r *http.Request) {
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
	var req rejectRequest
	if !response.Decode(w, r, &req) {
		return
	}
	order, err := h.Orders.RejectOrder(r.Context(), caller.UserID, id, req.Reason)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "order rejected", order)
}

func (h *Handler) createPaymentURL(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	orderID, err := pathID(r, "orderId")
	if err != nil {
		response.Error(w, err)
		return
	}
	paymentURL, err := h.Payments.CreatePaymentURL(r.Context(), caller.UserID, orderID, clientIP(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "payment url created", map[string]string{"payment_url": paymentURL})
}

// paymentReturn is called by the gateway's browser redirect, without identity headers.
func (h *Handler) paymentReturn(w http.ResponseWriter, r *http.Request) {
	result, err := h.Payments.HandleCallback(r.Context(), r.URL.Query())
	if err != nil {
		response.Error(w, err)
		return
	}

	target := fmt.Sprintf("%s/payment-success?orderId=%s", h.FrontendURL, result.OrderID)
	if !result.Success {
		target = fmt.Sprintf("%s/payment-failed?orderId=%s&error=%s", h.FrontendURL, result.OrderID, url.QueryEscape(result.ResponseCode))
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) paymentInfo(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	orderID, err := pathID(r, "orderId")
	if err != nil {
		response.Error(w, err)
		return
	}
	info, err := h.Payments.PaymentInfo(r.Context(), caller.UserID, orderID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "payment info", info)
}

func (h *Handler) paymentQRCode(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	orderID, err := pathID(r, "orderId")
	if err != nil {
		response.Error(w, err)
		return
	}
	png, err := h.Payments.PaymentQRCode(r.Context(), caller.UserID, orderID, clientIP(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
