package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

type memoryStore struct {
	carts map[string]domain.Cart
}

func (s *memoryStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return domain.Cart{}, nil
}

func (s *memoryStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

type stubProducts struct {
	products map[uint]*catalogdomain.Product
}

func (r *stubProducts) Create(product *catalogdomain.Product) error { return nil }

func (r *stubProducts) FindByID(ctx context.Context, id uint) (*catalogdomain.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	// Wrapped like the gorm repository wraps lookup failures
	return nil, fmt.Errorf("product %d: %w", id, catalogdomain.ErrNotFound)
}

func (r *stubProducts) FindAvailable(ctx context.Context, filter catalogdomain.ProductFilter) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (r *stubProducts) FindAll(filter catalogdomain.ProductFilter) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (r *stubProducts) Update(product *catalogdomain.Product) error { return nil }
func (r *stubProducts) Delete(id uint) error                        { return nil }
func (r *stubProducts) SetStock(id uint, stock int) error           { return nil }
func (r *stubProducts) Count() (int64, error)                       { return 0, nil }

func TestViewCart_PricesWithTax(t *testing.T) {
	store := &memoryStore{carts: map[string]domain.Cart{
		"s1": {1: 2, 2: 1},
	}}
	products := &stubProducts{products: map[uint]*catalogdomain.Product{
		1: {ID: 1, Name: "Milk", PriceCents: 1000, Stock: 5, Available: true},
		2: {ID: 2, Name: "Bread", PriceCents: 2000, Stock: 3, Available: true},
	}}
	handler := NewViewCartHandler(store, products)

	summary, err := handler.Handle(context.Background(), ViewCartQuery{SessionID: "s1"})
	require.NoError(t, err)

	require.Len(t, summary.Lines, 2)
	assert.Equal(t, "Milk", summary.Lines[0].Product.Name)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, int64(2000), summary.Lines[0].LineTotalCents)
	assert.Equal(t, "Bread", summary.Lines[1].Product.Name)
	assert.Equal(t, int64(2000), summary.Lines[1].LineTotalCents)

	assert.Equal(t, int64(4000), summary.SubtotalCents)
	assert.Equal(t, int64(760), summary.TaxCents)
	assert.Equal(t, int64(4760), summary.TotalCents)
}

func TestViewCart_Empty(t *testing.T) {
	store := &memoryStore{carts: map[string]domain.Cart{}}
	handler := NewViewCartHandler(store, &stubProducts{products: map[uint]*catalogdomain.Product{}})

	summary, err := handler.Handle(context.Background(), ViewCartQuery{SessionID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.SubtotalCents)
	assert.Zero(t, summary.TotalCents)
}

func TestViewCart_SkipsVanishedProducts(t *testing.T) {
	store := &memoryStore{carts: map[string]domain.Cart{
		"s1": {1: 1, 99: 4},
	}}
	products := &stubProducts{products: map[uint]*catalogdomain.Product{
		1: {ID: 1, Name: "Milk", PriceCents: 150, Stock: 5, Available: true},
	}}
	handler := NewViewCartHandler(store, products)

	summary, err := handler.Handle(context.Background(), ViewCartQuery{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, int64(150), summary.SubtotalCents)
}
