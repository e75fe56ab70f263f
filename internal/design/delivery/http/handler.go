package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/balasagoth/mi-supermercado/internal/design/usecase/query"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// DesignHandler serves the storefront branding to shoppers. Writes go
// through the admin service.
type DesignHandler struct {
	getHandler *query.GetDesignHandler
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(getHandler *query.GetDesignHandler) *DesignHandler {
	return &DesignHandler{getHandler: getHandler}
}

// GetDesign handles GET /api/design
func (h *DesignHandler) GetDesign(w http.ResponseWriter, r *http.Request) {
	design, err := h.getHandler.Handle(query.GetDesignQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load site design")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load site design"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(design)
}

// RegisterRoutes registers design routes
func (h *DesignHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/design", h.GetDesign).Methods("GET")
}
