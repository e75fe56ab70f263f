package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/balasagoth/mi-supermercado/internal/design/domain"
)

// GormDesignRepository implements DesignRepository interface using GORM
type GormDesignRepository struct {
	db *gorm.DB
}

// NewGormDesignRepository creates a new GORM design repository
func NewGormDesignRepository(db *gorm.DB) *GormDesignRepository {
	return &GormDesignRepository{db: db}
}

// Get retrieves the singleton design row
func (r *GormDesignRepository) Get() (*domain.SiteDesign, error) {
	var design domain.SiteDesign
	if err := r.db.First(&design).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load site design: %w", err)
	}
	return &design, nil
}

// Create inserts the singleton design row. The count check runs inside the
// insert transaction so two concurrent creates cannot both pass it.
func (r *GormDesignRepository) Create(design *domain.SiteDesign) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.SiteDesign{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count site design rows: %w", err)
		}
		if count > 0 {
			return domain.ErrSingletonExists
		}
		if err := tx.Create(design).Error; err != nil {
			return fmt.Errorf("failed to create site design: %w", err)
		}
		return nil
	})
}

// Update saves changes to the existing design row
func (r *GormDesignRepository) Update(design *domain.SiteDesign) error {
	if err := r.db.Save(design).Error; err != nil {
		return fmt.Errorf("failed to update site design: %w", err)
	}
	return nil
}
