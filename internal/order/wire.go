//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	orderHttp "github.com/balasagoth/mi-supermercado/internal/order/delivery/http"
	"github.com/balasagoth/mi-supermercado/internal/order/domain"
	"github.com/balasagoth/mi-supermercado/internal/order/repository"
	"github.com/balasagoth/mi-supermercado/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository with tracing
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepositoryWithTracing(db)
}

// Query Handlers Providers
func ProvideGetMyOrdersHandler(repo domain.OrderRepository) *query.GetMyOrdersHandler {
	return query.NewGetMyOrdersHandler(repo)
}

func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetMyOrdersHandler,
	ProvideGetOrderHandler,
)

// InitializeHandler initializes order handler with all dependencies
func InitializeHandler(db *gorm.DB) (*orderHttp.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		QueryHandlerSet,
		orderHttp.NewOrderHandler,
	)
	return nil, nil
}
