package sales

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

// Repository holds the sales history.
type Repository interface {
	List(ctx context.Context) ([]Sale, error)
	Prepend(ctx context.Context, sale Sale) (Sale, error)
}

type repository struct {
	mu    sync.RWMutex
	items []Sale
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedSales()
	var maxID int64
	for _, s := range items {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context) ([]Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Sale, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Prepend inserts at the head; the history shows newest sales first.
func (r *repository) Prepend(ctx context.Context, sale Sale) (Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sale.ID = r.seq.Next()
	r.items = append([]Sale{sale}, r.items...)
	return sale, nil
}

// CartStore keeps in-progress carts keyed by token.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]Cart)}
}

func (s *CartStore) New(store string) Cart {
	cart := Cart{Token: uuid.NewString(), Store: store}
	s.mu.Lock()
	s.carts[cart.Token] = cart
	s.mu.Unlock()
	return cart
}

func (s *CartStore) Get(token string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[token]
	if !ok {
		return Cart{}, fmt.Errorf("%w: cart %s", httpx.ErrNotFound, token)
	}
	return cart, nil
}

func (s *CartStore) Put(cart Cart) {
	s.mu.Lock()
	s.carts[cart.Token] = cart
	s.mu.Unlock()
}

func (s *CartStore) Delete(token string) {
	s.mu.Lock()
	delete(s.carts, token)
	s.mu.Unlock()
}
