package httpx

import (
	"context"
	"net/http"
	"time"

	"gamehub/internal/cart"
	"gamehub/internal/orders"

	"github.com/go-chi/chi/v5"
)

type OrdersHandler struct {
	Service *orders.Service
}

func (h *OrdersHandler) Register(r chi.Router, auth *Auth) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireCustomer)
		r.Post("/create-order", h.createOrder)
		r.Get("/my-orders", h.myOrders)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Get("/orders", h.allOrders)
		r.Post("/update-order-status", h.updateStatus)
	})
}

type createOrderReq struct {
	Items        []cart.Line `json:"items"`
	Total        float64     `json:"total"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Payment      string      `json:"payment"`
	CustomerName string      `json:"customerName"`
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := decodeStrict(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	sess := SessionFrom(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	conf, err := h.Service.Checkout(ctx, orders.CheckoutInput{
		Items:        req.Items,
		Total:        req.Total,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Address:      req.Address,
		Payment:      req.Payment,
	}, orders.Identity{CustomerID: sess.UserID, Username: sess.Username})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orderId": conf.OrderID})
}

func (h *OrdersHandler) myOrders(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	out, err := h.Service.OrdersFor(ctx, orders.Identity{CustomerID: sess.UserID, Username: sess.Username})
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *OrdersHandler) allOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	out, err := h.Service.AllOrders(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, out)
}

type updateStatusReq struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if err := decodeStrict(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Service.UpdateStatus(ctx, req.OrderID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "order": o})
}
