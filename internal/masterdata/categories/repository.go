package categories

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Category, int, error)
	Get(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id int64, category Category) error
	Delete(ctx context.Context, id int64) error
	RootNames(ctx context.Context) ([]string, error)
}

// repository keeps the collection in process memory. State is intentionally
// volatile: the panel reseeds on every restart.
type repository struct {
	mu    sync.RWMutex
	items []Category
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedCategories()
	var maxID int64
	for _, c := range items {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Category, int, error) {
	filters = filters.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []Category
	for _, c := range r.items {
		if shared.MatchesAny(filters.Search, c.Name, c.Slug) {
			filtered = append(filtered, c)
		}
	}

	p := shared.NewPagination(filters.Page, filters.PerPage, len(filtered))
	start, end := p.PageBounds()
	page := make([]Category, end-start)
	copy(page, filtered[start:end])
	return page, len(filtered), nil
}

func (r *repository) Get(ctx context.Context, id int64) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: category %d", httpx.ErrNotFound, id)
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = r.seq.Next()
	r.items = append(r.items, category)
	return category, nil
}

func (r *repository) Update(ctx context.Context, id int64, category Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			category.ID = id
			r.items[i] = category
			return nil
		}
	}
	return fmt.Errorf("%w: category %d", httpx.ErrNotFound, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: category %d", httpx.ErrNotFound, id)
}

// RootNames returns the names of root categories, the valid parent choices
// for the edit form.
func (r *repository) RootNames(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for _, c := range r.items {
		if c.Parent == "None" {
			names = append(names, c.Name)
		}
	}
	return names, nil
}
