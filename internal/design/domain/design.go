package domain

import (
	"errors"
	"time"
)

// Default branding applied before an admin saves anything
const (
	DefaultPrimaryColor = "#0D6EFD"
	DefaultFontFamily   = "Arial"
)

var (
	// ErrNotFound is returned when no design row has been saved yet
	ErrNotFound = errors.New("site design not configured")
	// ErrSingletonExists is returned on an attempt to insert a second design
	// row. The table holds at most one row.
	ErrSingletonExists = errors.New("site design already exists")
)

// SiteDesign is the admin-configurable storefront branding. It is persisted
// as a single row, never as process-wide mutable state.
type SiteDesign struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	PrimaryColor string    `json:"primary_color" gorm:"not null"`
	FontFamily   string    `json:"font_family" gorm:"not null"`
	LogoURL      string    `json:"logo_url"`
	BannerURL    string    `json:"banner_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (SiteDesign) TableName() string {
	return "site_design"
}

// DefaultDesign returns the branding used before any row is saved
func DefaultDesign() *SiteDesign {
	return &SiteDesign{
		PrimaryColor: DefaultPrimaryColor,
		FontFamily:   DefaultFontFamily,
	}
}

// DesignRepository defines the contract for site design data access
type DesignRepository interface {
	// Get returns the singleton row, or ErrNotFound if none was saved yet
	Get() (*SiteDesign, error)
	// Create inserts the singleton row; ErrSingletonExists if one is present
	Create(design *SiteDesign) error
	Update(design *SiteDesign) error
}
