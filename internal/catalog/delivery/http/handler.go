package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/catalog/usecase/query"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// CatalogHandler handles public catalog browsing requests
type CatalogHandler struct {
	listHandler       *query.ListProductsHandler
	getHandler        *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
) *CatalogHandler {
	return &CatalogHandler{
		listHandler:       listHandler,
		getHandler:        getHandler,
		categoriesHandler: categoriesHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListProducts handles GET /api/products?q=&category=&limit=&offset=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Search: r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Invalid category ID",
			})
			return
		}
		categoryID := uint(id)
		q.CategoryID = &categoryID
	}

	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	products, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to get product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get product",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"categories": categories,
			"total":      len(categories),
		},
	})
}

// RegisterRoutes registers public catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
