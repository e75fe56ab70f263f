package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
	"github.com/balasagoth/mi-supermercado/internal/cart/usecase/command"
	"github.com/balasagoth/mi-supermercado/internal/cart/usecase/query"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// SessionCookieName identifies the cart session cookie
const SessionCookieName = "cart_session"

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	addHandler         *command.AddItemHandler
	setQuantityHandler *command.SetQuantityHandler
	clearHandler       *command.ClearCartHandler
	viewHandler        *query.ViewCartHandler
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	setQuantityHandler *command.SetQuantityHandler,
	clearHandler *command.ClearCartHandler,
	viewHandler *query.ViewCartHandler,
) *CartHandler {
	return &CartHandler{
		addHandler:         addHandler,
		setQuantityHandler: setQuantityHandler,
		clearHandler:       clearHandler,
		viewHandler:        viewHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SessionID returns the cart session id from the request cookie, minting a
// new one (and setting the cookie) on first contact.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// ViewCart handles GET /api/cart
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionID(w, r)

	summary, err := h.viewHandler.Handle(r.Context(), query.ViewCartQuery{SessionID: sessionID})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to view cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sessionID := SessionID(w, r)
	cart, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		SessionID: sessionID,
		ProductID: req.ProductID,
	})
	if err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product added to cart",
		Data: map[string]interface{}{
			"total_items": cart.TotalItems(),
		},
	})
}

// SetQuantity handles PUT /api/cart/items/{id}
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sessionID := SessionID(w, r)
	cart, err := h.setQuantityHandler.Handle(r.Context(), command.SetQuantityCommand{
		SessionID: sessionID,
		ProductID: uint(productID),
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data: map[string]interface{}{
			"total_items": cart.TotalItems(),
		},
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionID(w, r)

	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{SessionID: sessionID}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

func (h *CartHandler) respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Product out of stock",
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Not enough stock for the requested quantity",
		})
	case errors.Is(err, domain.ErrNotInCart):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not in cart",
		})
	case errors.Is(err, catalogdomain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
	default:
		logger.Logger.Error().Err(err).Msg("Cart operation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Cart operation failed",
		})
	}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.ViewCart).Methods("GET")
	router.HandleFunc("/api/cart", h.ClearCart).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.AddItem).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.SetQuantity).Methods("PUT")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
