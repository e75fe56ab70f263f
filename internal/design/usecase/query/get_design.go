package query

import (
	"errors"

	"github.com/balasagoth/mi-supermercado/internal/design/domain"
)

// GetDesignQuery fetches the storefront branding
type GetDesignQuery struct{}

// GetDesignHandler handles get design query
type GetDesignHandler struct {
	repo domain.DesignRepository
}

// NewGetDesignHandler creates a new get design handler
func NewGetDesignHandler(repo domain.DesignRepository) *GetDesignHandler {
	return &GetDesignHandler{repo: repo}
}

// Handle executes the get design query. Before an admin saves anything the
// storefront renders with the defaults, so ErrNotFound maps to them here.
func (h *GetDesignHandler) Handle(q GetDesignQuery) (*domain.SiteDesign, error) {
	design, err := h.repo.Get()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultDesign(), nil
		}
		return nil, err
	}
	return design, nil
}
