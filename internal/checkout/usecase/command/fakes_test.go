package command

import (
	"context"
	"errors"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/gateway"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
	"github.com/balasagoth/mi-supermercado/kafka"
)

type fakeCartStore struct {
	carts    map[string]cartdomain.Cart
	clearErr error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]cartdomain.Cart)}
}

func (s *fakeCartStore) Get(ctx context.Context, sessionID string) (cartdomain.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return cartdomain.Cart{}, nil
}

func (s *fakeCartStore) Save(ctx context.Context, sessionID string, cart cartdomain.Cart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *fakeCartStore) Clear(ctx context.Context, sessionID string) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	delete(s.carts, sessionID)
	return nil
}

type fakeConfirmations struct {
	markers map[uint]string
	setErr  error
}

func newFakeConfirmations() *fakeConfirmations {
	return &fakeConfirmations{markers: make(map[uint]string)}
}

func (s *fakeConfirmations) SetConfirmed(ctx context.Context, userID uint, paymentRef string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.markers[userID] = paymentRef
	return nil
}

func (s *fakeConfirmations) GetConfirmed(ctx context.Context, userID uint) (string, bool, error) {
	ref, ok := s.markers[userID]
	return ref, ok, nil
}

func (s *fakeConfirmations) ClearConfirmed(ctx context.Context, userID uint) error {
	delete(s.markers, userID)
	return nil
}

type fakeOrderRepo struct {
	byRef     map[string]*orderdomain.Order
	lastLines []orderdomain.NewLine
	createErr error
	nextID    uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byRef: make(map[string]*orderdomain.Order)}
}

func (r *fakeOrderRepo) CreateForPayment(ctx context.Context, order *orderdomain.Order, lines []orderdomain.NewLine) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byRef[order.PaymentRef]; ok {
		return orderdomain.ErrDuplicatePaymentRef
	}
	r.nextID++
	order.ID = r.nextID
	r.byRef[order.PaymentRef] = order
	r.lastLines = lines
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*orderdomain.Order, error) {
	for _, order := range r.byRef {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, orderdomain.ErrNotFound
}

func (r *fakeOrderRepo) FindByPaymentRef(ref string) (*orderdomain.Order, error) {
	if order, ok := r.byRef[ref]; ok {
		return order, nil
	}
	return nil, orderdomain.ErrNotFound
}

func (r *fakeOrderRepo) FindByUserID(userID uint, limit, offset int) ([]orderdomain.Order, error) {
	var out []orderdomain.Order
	for _, order := range r.byRef {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindLatestByUserID(userID uint) (*orderdomain.Order, error) {
	return nil, orderdomain.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(limit, offset int) ([]orderdomain.Order, error) {
	var out []orderdomain.Order
	for _, order := range r.byRef {
		out = append(out, *order)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status orderdomain.OrderStatus) error {
	order, err := r.FindByID(id)
	if err != nil {
		return err
	}
	order.Status = status
	return nil
}

type fakeProductRepo struct {
	products map[uint]*catalogdomain.Product
}

func newFakeProductRepo(products ...catalogdomain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uint]*catalogdomain.Product)}
	for i := range products {
		p := products[i]
		repo.products[p.ID] = &p
	}
	return repo
}

func (r *fakeProductRepo) Create(product *catalogdomain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uint) (*catalogdomain.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, catalogdomain.ErrNotFound
}

func (r *fakeProductRepo) FindAvailable(ctx context.Context, filter catalogdomain.ProductFilter) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindAll(filter catalogdomain.ProductFilter) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(product *catalogdomain.Product) error { return nil }
func (r *fakeProductRepo) Delete(id uint) error                        { return nil }
func (r *fakeProductRepo) SetStock(id uint, stock int) error           { return nil }
func (r *fakeProductRepo) Count() (int64, error)                       { return int64(len(r.products)), nil }

type fakeGateway struct {
	lastReq gateway.CreateSessionRequest
	resp    *gateway.CreateSessionResponse
	err     error
}

func (g *fakeGateway) CreateSession(ctx context.Context, req gateway.CreateSessionRequest) (*gateway.CreateSessionResponse, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

type fakePublisher struct {
	events []kafka.OrderPlacedEvent
	err    error
}

func (p *fakePublisher) PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

var errBoom = errors.New("boom")
