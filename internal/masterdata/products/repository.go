package products

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	mu    sync.RWMutex
	items []Product
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedProducts()
	var maxID int64
	for _, p := range items {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error) {
	filters = filters.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []Product
	for _, p := range r.items {
		if shared.MatchesAny(filters.Search, p.Name, p.SKU) {
			filtered = append(filtered, p)
		}
	}

	pg := shared.NewPagination(filters.Page, filters.PerPage, len(filtered))
	start, end := pg.PageBounds()
	page := make([]Product, end-start)
	copy(page, filtered[start:end])
	return page, len(filtered), nil
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.seq.Next()
	r.items = append(r.items, product)
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			product.ID = id
			r.items[i] = product
			return nil
		}
	}
	return fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
}
