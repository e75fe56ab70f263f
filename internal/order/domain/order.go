package domain

import (
	"context"
	"errors"
	"time"
)

// OrderStatus enumerates the order lifecycle
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is created exactly once per completed payment. PaymentRef carries
// the gateway session id; its unique index is the idempotency guard against
// duplicate webhook delivery.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id" gorm:"not null;index"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalCents      int64       `json:"total_cents" gorm:"not null"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentRef      string      `json:"payment_ref" gorm:"not null;uniqueIndex"`
	Lines           []OrderLine `json:"lines" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"created_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderLine records one product within an order with the unit price captured
// at purchase time. A product appears at most once per order.
type OrderLine struct {
	ID             uint  `json:"id" gorm:"primaryKey"`
	OrderID        uint  `json:"order_id" gorm:"not null;uniqueIndex:idx_order_product"`
	ProductID      uint  `json:"product_id" gorm:"not null;uniqueIndex:idx_order_product"`
	Quantity       int   `json:"quantity" gorm:"not null"`
	UnitPriceCents int64 `json:"unit_price_cents" gorm:"not null"`
}

// TableName specifies the table name
func (OrderLine) TableName() string {
	return "order_lines"
}

// SubtotalCents returns quantity times captured unit price
func (l OrderLine) SubtotalCents() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

var (
	// ErrNotFound is returned when an order does not exist
	ErrNotFound = errors.New("order not found")
	// ErrDuplicatePaymentRef is returned when an order with the same payment
	// reference already exists. Callers treat this as "already handled".
	ErrDuplicatePaymentRef = errors.New("order already exists for payment reference")
	// ErrInsufficientStock is returned when materialization would drive a
	// product's stock negative
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrProductNotFound is returned when a cart references a product that
	// vanished before materialization
	ErrProductNotFound = errors.New("product not found")
)

// NewLine is a materialization request for one order line. The unit price is
// read from the product row inside the transaction, not supplied by callers.
type NewLine struct {
	ProductID uint
	Quantity  int
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	// CreateForPayment atomically creates the order with its lines and
	// decrements product stock. Everything rolls back on any fault.
	CreateForPayment(ctx context.Context, order *Order, lines []NewLine) error
	FindByID(id uint) (*Order, error)
	FindByPaymentRef(ref string) (*Order, error)
	FindByUserID(userID uint, limit, offset int) ([]Order, error)
	FindLatestByUserID(userID uint) (*Order, error)
	// FindAll lists orders across all users, newest first. Back-office only.
	FindAll(limit, offset int) ([]Order, error)
	UpdateStatus(id uint, status OrderStatus) error
}
