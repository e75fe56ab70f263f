//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartHttp "github.com/balasagoth/mi-supermercado/internal/cart/delivery/http"
	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
	"github.com/balasagoth/mi-supermercado/internal/cart/repository"
	"github.com/balasagoth/mi-supermercado/internal/cart/usecase/command"
	"github.com/balasagoth/mi-supermercado/internal/cart/usecase/query"
	"github.com/balasagoth/mi-supermercado/internal/catalog"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// ProvideCartStore provides the Redis-backed cart store
func ProvideCartStore(client *redis.Client) domain.Store {
	return repository.NewRedisCartStore(client)
}

// Command Handlers Providers
func ProvideAddItemHandler(store domain.Store, products catalogdomain.ProductRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(store, products)
}

func ProvideSetQuantityHandler(store domain.Store) *command.SetQuantityHandler {
	return command.NewSetQuantityHandler(store)
}

func ProvideClearCartHandler(store domain.Store) *command.ClearCartHandler {
	return command.NewClearCartHandler(store)
}

// Query Handlers Providers
func ProvideViewCartHandler(store domain.Store, products catalogdomain.ProductRepository) *query.ViewCartHandler {
	return query.NewViewCartHandler(store, products)
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideCartStore,
)

var HandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideSetQuantityHandler,
	ProvideClearCartHandler,
	ProvideViewCartHandler,
)

// InitializeHandler initializes cart handler with all dependencies
func InitializeHandler(client *redis.Client, db *gorm.DB) (*cartHttp.CartHandler, error) {
	wire.Build(
		StoreSet,
		HandlerSet,
		catalog.ProvideProductRepository,
		cartHttp.NewCartHandler,
	)
	return nil, nil
}
