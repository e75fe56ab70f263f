package command

import (
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name        string
	Description string
}

// CreateCategoryHandler handles create category command
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	category := &domain.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
	}

	if err := h.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}
