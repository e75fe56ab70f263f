//go:build wireinject
// +build wireinject

package design

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	designHttp "github.com/balasagoth/mi-supermercado/internal/design/delivery/http"
	"github.com/balasagoth/mi-supermercado/internal/design/domain"
	"github.com/balasagoth/mi-supermercado/internal/design/repository"
	"github.com/balasagoth/mi-supermercado/internal/design/usecase/query"
)

// ProvideDesignRepository provides the design repository
func ProvideDesignRepository(db *gorm.DB) domain.DesignRepository {
	return repository.NewGormDesignRepository(db)
}

// ProvideGetDesignHandler provides the get design query handler
func ProvideGetDesignHandler(repo domain.DesignRepository) *query.GetDesignHandler {
	return query.NewGetDesignHandler(repo)
}

// InitializeHandler initializes design handler with all dependencies
func InitializeHandler(db *gorm.DB) (*designHttp.DesignHandler, error) {
	wire.Build(
		ProvideDesignRepository,
		ProvideGetDesignHandler,
		designHttp.NewDesignHandler,
	)
	return nil, nil
}
