package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/balasagoth/mi-supermercado/internal/order/domain"
	"github.com/balasagoth/mi-supermercado/internal/order/usecase/query"
	userHttp "github.com/balasagoth/mi-supermercado/internal/user/delivery/http"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// OrderHandler handles HTTP requests for order history
type OrderHandler struct {
	myOrdersHandler *query.GetMyOrdersHandler
	getHandler      *query.GetOrderHandler
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(myOrdersHandler *query.GetMyOrdersHandler, getHandler *query.GetOrderHandler) *OrderHandler {
	return &OrderHandler{
		myOrdersHandler: myOrdersHandler,
		getHandler:      getHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GetMyOrders handles GET /api/orders/my (authenticated user)
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(userHttp.UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "User ID not found in context",
		})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.myOrdersHandler.Handle(query.GetMyOrdersQuery{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to get user orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// GetOrder handles GET /api/orders/{id} (owner only)
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(userHttp.UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "User ID not found in context",
		})
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Order not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to get order")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get order",
		})
		return
	}

	// Owners only; the back office has its own surface
	if order.UserID != userID {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Order not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// RegisterRoutes registers order routes behind authentication
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders/my", userHttp.AuthMiddleware(h.GetMyOrders)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", userHttp.AuthMiddleware(h.GetOrder)).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
