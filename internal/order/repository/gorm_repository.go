package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderLine{})
}

// CreateForPayment materializes an order inside a single transaction.
//
// For each requested line the product row is locked FOR UPDATE, the unit
// price is captured from the row, and stock is decremented with a guard that
// keeps it non-negative. Concurrent materializations touching the same
// product serialize on the row lock. The unique index on payment_ref is the
// idempotency safety net: a lost race surfaces as ErrDuplicatePaymentRef and
// the whole transaction rolls back.
func (r *GormOrderRepository) CreateForPayment(ctx context.Context, order *domain.Order, lines []domain.NewLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var product catalogdomain.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, line.ProductID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrProductNotFound
				}
				return fmt.Errorf("failed to lock product %d: %w", line.ProductID, err)
			}

			result := tx.Model(&catalogdomain.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %d: %w", line.ProductID, result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.ErrInsufficientStock
			}

			order.Lines = append(order.Lines, domain.OrderLine{
				ProductID:      line.ProductID,
				Quantity:       line.Quantity,
				UnitPriceCents: product.PriceCents,
			})
		}

		if err := tx.Create(order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicatePaymentRef
			}
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Preload("Lines").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByPaymentRef(ref string) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Where("payment_ref = ?", ref).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by payment ref: %w", err)
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByUserID(userID uint, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	query := r.db.Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindLatestByUserID(userID uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest order: %w", err)
	}
	return &order, nil
}

// FindAll lists orders across all users, newest first. Back-office only.
func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	query := r.db.Preload("Lines").Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

func (r *GormOrderRepository) UpdateStatus(id uint, status domain.OrderStatus) error {
	result := r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
