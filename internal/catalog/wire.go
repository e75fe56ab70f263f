//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogHttp "github.com/balasagoth/mi-supermercado/internal/catalog/delivery/http"
	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/catalog/repository"
	"github.com/balasagoth/mi-supermercado/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the product repository with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

// Query Handlers Providers
func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideGetProductHandler(repo domain.ProductRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideListCategoriesHandler(repo domain.CategoryRepository) *query.ListCategoriesHandler {
	return query.NewListCategoriesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListProductsHandler,
	ProvideGetProductHandler,
	ProvideListCategoriesHandler,
)

// InitializeHandler initializes catalog handler with all dependencies
func InitializeHandler(db *gorm.DB) (*catalogHttp.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		QueryHandlerSet,
		catalogHttp.NewCatalogHandler,
	)
	return nil, nil
}
