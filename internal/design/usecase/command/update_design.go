package command

import (
	"errors"
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/design/domain"
)

// UpdateDesignCommand saves the storefront branding. Nil fields keep their
// current value.
type UpdateDesignCommand struct {
	PrimaryColor *string
	FontFamily   *string
	LogoURL      *string
	BannerURL    *string
}

// UpdateDesignHandler handles update design command
type UpdateDesignHandler struct {
	repo domain.DesignRepository
}

// NewUpdateDesignHandler creates a new update design handler
func NewUpdateDesignHandler(repo domain.DesignRepository) *UpdateDesignHandler {
	return &UpdateDesignHandler{repo: repo}
}

// Handle executes the update design command, creating the singleton row on
// first save and editing it afterwards
func (h *UpdateDesignHandler) Handle(cmd UpdateDesignCommand) (*domain.SiteDesign, error) {
	design, err := h.repo.Get()
	creating := false
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		design = domain.DefaultDesign()
		creating = true
	}

	if cmd.PrimaryColor != nil {
		if *cmd.PrimaryColor == "" {
			return nil, fmt.Errorf("primary color cannot be empty")
		}
		design.PrimaryColor = *cmd.PrimaryColor
	}
	if cmd.FontFamily != nil {
		if *cmd.FontFamily == "" {
			return nil, fmt.Errorf("font family cannot be empty")
		}
		design.FontFamily = *cmd.FontFamily
	}
	if cmd.LogoURL != nil {
		design.LogoURL = *cmd.LogoURL
	}
	if cmd.BannerURL != nil {
		design.BannerURL = *cmd.BannerURL
	}

	if creating {
		if err := h.repo.Create(design); err != nil {
			// Lost the first-save race; retry as a plain update
			if errors.Is(err, domain.ErrSingletonExists) {
				return h.Handle(cmd)
			}
			return nil, err
		}
		return design, nil
	}

	if err := h.repo.Update(design); err != nil {
		return nil, err
	}
	return design, nil
}
