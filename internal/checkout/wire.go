//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/balasagoth/mi-supermercado/internal/cart"
	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	cartrepo "github.com/balasagoth/mi-supermercado/internal/cart/repository"
	"github.com/balasagoth/mi-supermercado/internal/catalog"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	checkoutHttp "github.com/balasagoth/mi-supermercado/internal/checkout/delivery/http"
	"github.com/balasagoth/mi-supermercado/internal/checkout/gateway"
	"github.com/balasagoth/mi-supermercado/internal/checkout/usecase/command"
	"github.com/balasagoth/mi-supermercado/internal/order"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
)

// Config carries the gateway and webhook settings for the checkout flow
type Config struct {
	GatewayBaseURL string
	GatewayAPIKey  string
	WebhookSecret  string
	SuccessURL     string
	CancelURL      string
}

// ProvideGatewayClient provides the payment gateway client
func ProvideGatewayClient(cfg Config) command.PaymentGateway {
	return gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayAPIKey)
}

// ProvideConfirmationStore provides the Redis-backed confirmation store
func ProvideConfirmationStore(client *redis.Client) cartdomain.ConfirmationStore {
	return cartrepo.NewRedisCartStore(client)
}

// Command Handlers Providers
func ProvideInitiateCheckoutHandler(store cartdomain.Store, products catalogdomain.ProductRepository, gw command.PaymentGateway) *command.InitiateCheckoutHandler {
	return command.NewInitiateCheckoutHandler(store, products, gw)
}

func ProvideProcessNotificationHandler(orders orderdomain.OrderRepository, confirmations cartdomain.ConfirmationStore, publisher command.OrderEventPublisher) *command.ProcessNotificationHandler {
	return command.NewProcessNotificationHandler(orders, confirmations, publisher)
}

func ProvideConfirmOrderHandler(store cartdomain.Store, confirmations cartdomain.ConfirmationStore, orders orderdomain.OrderRepository) *command.ConfirmOrderHandler {
	return command.NewConfirmOrderHandler(store, confirmations, orders)
}

// ProvideCheckoutHandler provides the delivery handler
func ProvideCheckoutHandler(
	initiate *command.InitiateCheckoutHandler,
	process *command.ProcessNotificationHandler,
	confirm *command.ConfirmOrderHandler,
	cfg Config,
) *checkoutHttp.CheckoutHandler {
	return checkoutHttp.NewCheckoutHandler(initiate, process, confirm, cfg.WebhookSecret, cfg.SuccessURL, cfg.CancelURL)
}

// Wire sets
var HandlerSet = wire.NewSet(
	ProvideGatewayClient,
	ProvideConfirmationStore,
	ProvideInitiateCheckoutHandler,
	ProvideProcessNotificationHandler,
	ProvideConfirmOrderHandler,
	ProvideCheckoutHandler,
)

// InitializeHandler initializes checkout handler with all dependencies.
// publisher may be nil when Kafka is not configured.
func InitializeHandler(db *gorm.DB, client *redis.Client, publisher command.OrderEventPublisher, cfg Config) (*checkoutHttp.CheckoutHandler, error) {
	wire.Build(
		HandlerSet,
		cart.ProvideCartStore,
		catalog.ProvideProductRepository,
		order.ProvideOrderRepository,
	)
	return nil, nil
}
