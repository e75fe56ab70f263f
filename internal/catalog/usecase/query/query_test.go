package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

type stubProducts struct {
	products   []domain.Product
	lastFilter domain.ProductFilter
}

func (r *stubProducts) Create(product *domain.Product) error { return nil }

func (r *stubProducts) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubProducts) FindAvailable(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	r.lastFilter = filter
	var out []domain.Product
	for _, p := range r.products {
		if p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProducts) FindAll(filter domain.ProductFilter) ([]domain.Product, error) {
	return r.products, nil
}

func (r *stubProducts) Update(product *domain.Product) error { return nil }
func (r *stubProducts) Delete(id uint) error                 { return nil }
func (r *stubProducts) SetStock(id uint, stock int) error    { return nil }
func (r *stubProducts) Count() (int64, error)                { return int64(len(r.products)), nil }

func TestListProducts_PassesFilterAndHidesUnavailable(t *testing.T) {
	categoryID := uint(3)
	repo := &stubProducts{products: []domain.Product{
		{ID: 1, Name: "Milk", Available: true},
		{ID: 2, Name: "Old Bread", Available: false},
	}}
	handler := NewListProductsHandler(repo)

	products, err := handler.Handle(context.Background(), ListProductsQuery{
		CategoryID: &categoryID,
		Search:     "mil",
		Limit:      20,
		Offset:     40,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Milk", products[0].Name)

	assert.Equal(t, &categoryID, repo.lastFilter.CategoryID)
	assert.Equal(t, "mil", repo.lastFilter.Search)
	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.Equal(t, 40, repo.lastFilter.Offset)
}

func TestGetProduct(t *testing.T) {
	repo := &stubProducts{products: []domain.Product{{ID: 1, Name: "Milk"}}}
	handler := NewGetProductHandler(repo)

	product, err := handler.Handle(context.Background(), GetProductQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Milk", product.Name)

	_, err = handler.Handle(context.Background(), GetProductQuery{ID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
