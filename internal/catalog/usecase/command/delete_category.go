package command

import (
	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles delete category command
type DeleteCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

// Handle executes the delete category command. Products under the category
// are detached, not deleted.
func (h *DeleteCategoryHandler) Handle(cmd DeleteCategoryCommand) error {
	return h.repo.Delete(cmd.ID)
}
