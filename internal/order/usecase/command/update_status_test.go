package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

type memoryOrderRepo struct {
	orders map[uint]*domain.Order
}

func (r *memoryOrderRepo) CreateForPayment(ctx context.Context, order *domain.Order, lines []domain.NewLine) error {
	r.orders[order.ID] = order
	return nil
}

func (r *memoryOrderRepo) FindByID(id uint) (*domain.Order, error) {
	if order, ok := r.orders[id]; ok {
		return order, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryOrderRepo) FindByPaymentRef(ref string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (r *memoryOrderRepo) FindByUserID(userID uint, limit, offset int) ([]domain.Order, error) {
	return nil, nil
}

func (r *memoryOrderRepo) FindLatestByUserID(userID uint) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (r *memoryOrderRepo) FindAll(limit, offset int) ([]domain.Order, error) { return nil, nil }

func (r *memoryOrderRepo) UpdateStatus(id uint, status domain.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	return nil
}

func TestUpdateStatus(t *testing.T) {
	repo := &memoryOrderRepo{orders: map[uint]*domain.Order{
		1: {ID: 1, Status: domain.StatusPreparing},
	}}
	handler := NewUpdateStatusHandler(repo)

	t.Run("missing order id", func(t *testing.T) {
		err := handler.Handle(UpdateStatusCommand{Status: domain.StatusShipped})
		assert.Error(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		err := handler.Handle(UpdateStatusCommand{OrderID: 1, Status: "teleported"})
		assert.Error(t, err)
		assert.Equal(t, domain.StatusPreparing, repo.orders[1].Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		err := handler.Handle(UpdateStatusCommand{OrderID: 99, Status: domain.StatusShipped})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("updates status", func(t *testing.T) {
		err := handler.Handle(UpdateStatusCommand{OrderID: 1, Status: domain.StatusShipped})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, repo.orders[1].Status)
	})
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []domain.OrderStatus{
		domain.StatusPending,
		domain.StatusPreparing,
		domain.StatusShipped,
		domain.StatusDelivered,
		domain.StatusCancelled,
	} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, domain.OrderStatus("").Valid())
	assert.False(t, domain.OrderStatus("returned").Valid())
}
