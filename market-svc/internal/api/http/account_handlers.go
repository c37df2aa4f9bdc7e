package httpapi

import (
	"net/http"

	"food-marketplace/auth"
	"food-marketplace/response"

	"github.com/google/uuid"
)

type cartItemRequest struct {
	MenuID   uuid.UUID `json:"menu_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=1,max=100"`
	Note     string    `json:"note" validate:"max=500"`
}

type cartUpdateRequest struct {
	Quantity int    `json:"quantity" validate:"min=1,max=100"`
	Note     string `json:"note" validate:"max=500"`
}

type wishlistRequest struct {
	MenuID uuid.UUID `json:"menu_id" validate:"required"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	cart, err := h.Carts.GetCart(r.Context(), caller.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "cart", map[string]interface{}{"cart": cart, "total": cart.Total()})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req cartItemRequest
	if !response.Decode(w, r, &req) {
		return
	}
	cart, err := h.Carts.AddItem(r.Context(), caller.UserID, req.MenuID, req.Quantity, req.Note)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "item added to cart", map[string]interface{}{"cart": cart, "total": cart.Total()})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req cartUpdateRequest
	if !response.Decode(w, r, &req) {
		return
	}
	cart, err := h.Carts.UpdateItem(r.Context(), caller.UserID, itemID, req.Quantity, req.Note)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "cart item updated", map[string]interface{}{"cart": cart, "total": cart.Total()})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	cart, err := h.Carts.RemoveItem(r.Context(), caller.UserID, itemID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "cart item removed", map[string]interface{}{"cart": cart, "total": cart.Total()})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.Carts.Clear(r.Context(), caller.UserID); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "cart cleared", nil)
}

func (h *Handler) listWishlist(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.Wishlist.List(r.Context(), caller.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "wishlist", items)
}

func (h *Handler) addWishlist(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req wishlistRequest
	if !response.Decode(w, r, &req) {
		return
	}
	if err := h.Wishlist.Add(r.Context(), caller.UserID, req.MenuID); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "added to wishlist", nil)
}

func (h *Handler) removeWishlist(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	menuID, err := pathID(r, "menuId")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.Wishlist.Remove(r.Context(), caller.UserID, menuID); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "removed from wishlist", nil)
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	menuID, err := pathID(r, "menuId")
	if err != nil {
		response.Error(w, err)
		return
	}
	added, err := h.Wishlist.Toggle(r.Context(), caller.UserID, menuID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "wishlist updated", map[string]bool{"in_wishlist": added})
}

func (h *Handler) checkWishlist(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r, auth.RoleCustomer)
	if err != nil {
		response.Error(w, err)
		return
	}
	menuID, err := pathID(r, "menuId")
	if err != nil {
		response.Error(w, err)
		return
	}
	present, err := h.Wishlist.Contains(r.Context(), caller.UserID, menuID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "wishlist status", map[string]bool{"in_wishlist": present})
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	notifications, err := h.Notifications.List(r.Context(), caller.UserID, queryInt(r, "limit", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "notifications", notifications)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	count, err := h.Notifications.UnreadCount(r.Context(), caller.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "unread count", map[string]int{"count": count})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Notifications.MarkRead(r.Context(), caller.UserID, id); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "notification marked as read", nil)
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Require(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.Notifications.MarkAllRead(r.Context(), caller.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "notifications marked as read", map[string]int64{"updated": updated})
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Notifications.Delete(r.Context(), caller.UserID, id); err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, "notification deleted", nil)
}
