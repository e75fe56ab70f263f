package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepositoryWithTracing wraps GormOrderRepository with tracing
type GormOrderRepositoryWithTracing struct {
	*GormOrderRepository
}

// NewGormOrderRepositoryWithTracing creates a new repository with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *GormOrderRepositoryWithTracing {
	return &GormOrderRepositoryWithTracing{
		GormOrderRepository: NewGormOrderRepository(db),
	}
}

// CreateForPayment traces the materialization transaction
func (r *GormOrderRepositoryWithTracing) CreateForPayment(ctx context.Context, order *domain.Order, lines []domain.NewLine) error {
	ctx, span := tracer.Start(ctx, "repository.CreateForPayment",
		trace.WithAttributes(
			attribute.String("order.payment_ref", order.PaymentRef),
			attribute.Int64("order.user_id", int64(order.UserID)),
			attribute.Int64("order.total_cents", order.TotalCents),
			attribute.Int("order.line_count", len(lines)),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.CreateForPayment(ctx, order, lines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}
