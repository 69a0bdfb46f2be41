package brands

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Brand, int, error)
	Get(ctx context.Context, id int64) (Brand, error)
	Create(ctx context.Context, brand Brand) (Brand, error)
	Update(ctx context.Context, id int64, brand Brand) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	mu    sync.RWMutex
	items []Brand
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedBrands()
	var maxID int64
	for _, b := range items {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Brand, int, error) {
	filters = filters.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []Brand
	for _, b := range r.items {
		if shared.MatchesAny(filters.Search, b.Name, b.Slug) {
			filtered = append(filtered, b)
		}
	}

	p := shared.NewPagination(filters.Page, filters.PerPage, len(filtered))
	start, end := p.PageBounds()
	page := make([]Brand, end-start)
	copy(page, filtered[start:end])
	return page, len(filtered), nil
}

func (r *repository) Get(ctx context.Context, id int64) (Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return Brand{}, fmt.Errorf("%w: brand %d", httpx.ErrNotFound, id)
}

func (r *repository) Create(ctx context.Context, brand Brand) (Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	brand.ID = r.seq.Next()
	r.items = append(r.items, brand)
	return brand, nil
}

func (r *repository) Update(ctx context.Context, id int64, brand Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.items {
		if b.ID == id {
			brand.ID = id
			r.items[i] = brand
			return nil
		}
	}
	return fmt.Errorf("%w: brand %d", httpx.ErrNotFound, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.items {
		if b.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: brand %d", httpx.ErrNotFound, id)
}
