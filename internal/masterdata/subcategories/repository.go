package subcategories

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Subcategory, int, error)
	Get(ctx context.Context, id int64) (Subcategory, error)
	Create(ctx context.Context, sub Subcategory) (Subcategory, error)
	Update(ctx context.Context, id int64, sub Subcategory) error
	Delete(ctx context.Context, id int64) error
	ParentNames(ctx context.Context) ([]string, error)
}

type repository struct {
	mu    sync.RWMutex
	items []Subcategory
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedSubcategories()
	var maxID int64
	for _, s := range items {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Subcategory, int, error) {
	filters = filters.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []Subcategory
	for _, s := range r.items {
		if shared.MatchesAny(filters.Search, s.Name, s.Slug) {
			filtered = append(filtered, s)
		}
	}

	p := shared.NewPagination(filters.Page, filters.PerPage, len(filtered))
	start, end := p.PageBounds()
	page := make([]Subcategory, end-start)
	copy(page, filtered[start:end])
	return page, len(filtered), nil
}

func (r *repository) Get(ctx context.Context, id int64) (Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return Subcategory{}, fmt.Errorf("%w: subcategory %d", httpx.ErrNotFound, id)
}

func (r *repository) Create(ctx context.Context, sub Subcategory) (Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.ID = r.seq.Next()
	r.items = append(r.items, sub)
	return sub, nil
}

func (r *repository) Update(ctx context.Context, id int64, sub Subcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.items {
		if s.ID == id {
			sub.ID = id
			r.items[i] = sub
			return nil
		}
	}
	return fmt.Errorf("%w: subcategory %d", httpx.ErrNotFound, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.items {
		if s.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: subcategory %d", httpx.ErrNotFound, id)
}

// ParentNames returns the distinct parent category names present in the
// collection, in first-seen order.
func (r *repository) ParentNames(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, s := range r.items {
		if s.Parent != "" && !seen[s.Parent] {
			seen[s.Parent] = true
			names = append(names, s.Parent)
		}
	}
	return names, nil
}
