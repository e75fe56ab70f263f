package domain

import (
	"context"
	"errors"
	"time"
)

// Product represents an item in the store inventory. Prices are stored in
// minor currency units (cents) to avoid floating-point drift.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;index"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available" gorm:"default:true"`
	CategoryID  *uint     `json:"category_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product can be purchased
func (p *Product) IsAvailable() bool {
	return p.Available && p.Stock > 0
}

var (
	// ErrNotFound is returned when a product or category does not exist
	ErrNotFound = errors.New("not found")
	// ErrProductReferenced is returned when deleting a product that order
	// lines still reference. Referential protection, never cascade.
	ErrProductReferenced = errors.New("product is referenced by existing orders")
	// ErrDuplicateName is returned when a category name is already taken
	ErrDuplicateName = errors.New("name already exists")
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID *uint
	Search     string // case-insensitive substring match on name
	Limit      int
	Offset     int
}

// ProductRepository defines the contract for product data access. The
// storefront reads take a context so request traces reach the repository.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAvailable(ctx context.Context, filter ProductFilter) ([]Product, error)
	// FindAll lists every product regardless of availability, for back-office
	// views
	FindAll(filter ProductFilter) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	SetStock(id uint, stock int) error
	Count() (int64, error)
}
