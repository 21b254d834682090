package order

import (
	"context"
	"fmt"

	"crm-be/internal/client"
	"crm-be/internal/product"
)

// memStore backs every collaborator of the service in tests. fakeTx snapshots
// products and orders and restores them when the function fails, the way a
// database rollback would.
type memStore struct {
	clients  map[string]client.Client
	products map[string]product.Product
	orders   map[string]Order
	seq      int

	// staleOn makes the next Save of that product lose the version race.
	staleOn map[string]bool
	saves   []string
}

func newMemStore() *memStore {
	return &memStore{
		clients:  map[string]client.Client{},
		products: map[string]product.Product{},
		orders:   map[string]Order{},
		staleOn:  map[string]bool{},
	}
}

func (s *memStore) addClient(id, sellerID string) {
	s.clients[id] = client.Client{ID: id, FirstName: id, SellerID: sellerID}
}

func (s *memStore) addProduct(id string, stock int) {
	s.products[id] = product.Product{ID: id, Name: "product " + id, Stock: stock, Version: 1}
}

func (s *memStore) stock(id string) int {
	return s.products[id].Stock
}

// clients

type fakeClients struct{ s *memStore }

func (f fakeClients) FindByID(_ context.Context, id string) (*client.Client, error) {
	c, ok := f.s.clients[id]
	if !ok {
		return nil, client.ErrClientNotFound
	}
	return &c, nil
}

// products

type fakeCatalog struct{ s *memStore }

func (f fakeCatalog) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := f.s.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &p, nil
}

func (f fakeCatalog) Save(_ context.Context, p *product.Product) error {
	f.s.saves = append(f.s.saves, p.ID)
	cur, ok := f.s.products[p.ID]
	if !ok || cur.Version != p.Version || f.s.staleOn[p.ID] {
		return product.ErrStockConflict
	}
	p.Version++
	f.s.products[p.ID] = *p
	return nil
}

// orders

type fakeOrders struct{ s *memStore }

func cloneOrder(o Order) *Order {
	o.Items = append([]LineItem(nil), o.Items...)
	return &o
}

func (f fakeOrders) FindByID(_ context.Context, id string) (*Order, error) {
	o, ok := f.s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (f fakeOrders) Create(_ context.Context, o *Order) (*Order, error) {
	f.s.seq++
	o.ID = fmt.Sprintf("o%d", f.s.seq)
	f.s.orders[o.ID] = *cloneOrder(*o)
	return o, nil
}

func (f fakeOrders) Update(_ context.Context, o *Order) (*Order, error) {
	if _, ok := f.s.orders[o.ID]; !ok {
		return nil, ErrOrderNotFound
	}
	f.s.orders[o.ID] = *cloneOrder(*o)
	return cloneOrder(*o), nil
}

func (f fakeOrders) Delete(_ context.Context, id string) error {
	if _, ok := f.s.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(f.s.orders, id)
	return nil
}

func (f fakeOrders) filter(keep func(Order) bool) []*Order {
	res := []*Order{}
	for i := 1; i <= f.s.seq; i++ {
		if o, ok := f.s.orders[fmt.Sprintf("o%d", i)]; ok && keep(o) {
			res = append(res, cloneOrder(o))
		}
	}
	return res
}

func (f fakeOrders) List(context.Context) ([]*Order, error) {
	return f.filter(func(Order) bool { return true }), nil
}

func (f fakeOrders) ListBySeller(_ context.Context, sellerID string) ([]*Order, error) {
	return f.filter(func(o Order) bool { return o.SellerID == sellerID }), nil
}

func (f fakeOrders) ListBySellerAndStatus(_ context.Context, sellerID string, status Status) ([]*Order, error) {
	return f.filter(func(o Order) bool { return o.SellerID == sellerID && o.Status == status }), nil
}

// transactions

type fakeTx struct {
	s         *memStore
	commits   int
	rollbacks int
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	products := make(map[string]product.Product, len(t.s.products))
	for k, v := range t.s.products {
		products[k] = v
	}
	orders := make(map[string]Order, len(t.s.orders))
	for k, v := range t.s.orders {
		orders[k] = *cloneOrder(v)
	}

	if err := fn(ctx); err != nil {
		t.s.products = products
		t.s.orders = orders
		t.rollbacks++
		return err
	}
	t.commits++
	return nil
}

type fakeReports struct {
	calls int
	err   error
}

func (r *fakeReports) Invalidate(context.Context) error {
	r.calls++
	return r.err
}
