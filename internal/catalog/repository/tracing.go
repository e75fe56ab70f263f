package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// FindByID traces a single product lookup
func (r *GormProductRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Int64("product.price_cents", product.PriceCents),
		attribute.Int("product.stock", product.Stock),
	)
	return product, nil
}

// FindAvailable traces a filtered catalog listing
func (r *GormProductRepositoryWithTracing) FindAvailable(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAvailable",
		trace.WithAttributes(
			attribute.String("filter.search", filter.Search),
		),
	)
	defer span.End()

	if filter.CategoryID != nil {
		span.SetAttributes(attribute.Int("filter.category_id", int(*filter.CategoryID)))
	}

	products, err := r.GormProductRepository.FindAvailable(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}
