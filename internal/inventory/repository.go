package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context, req ListStockRequest) ([]StockEntry, error)
	Get(ctx context.Context, productID int64, store string) (StockEntry, error)
	SetStock(ctx context.Context, productID int64, store string, stock int) (StockEntry, error)
}

type repository struct {
	mu    sync.RWMutex
	items []StockEntry
}

func NewRepository() Repository {
	return &repository{items: seedStock()}
}

func (r *repository) List(ctx context.Context, req ListStockRequest) ([]StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []StockEntry
	for _, e := range r.items {
		if !shared.MatchesAny(req.Search, e.ProductName) {
			continue
		}
		if req.Store != "" && e.Store != req.Store {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (r *repository) Get(ctx context.Context, productID int64, store string) (StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.items {
		if e.ProductID == productID && e.Store == store {
			return e, nil
		}
	}
	return StockEntry{}, fmt.Errorf("%w: stock for product %d at %s", httpx.ErrNotFound, productID, store)
}

func (r *repository) SetStock(ctx context.Context, productID int64, store string, stock int) (StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.items {
		if e.ProductID == productID && e.Store == store {
			r.items[i].Stock = stock
			return r.items[i], nil
		}
	}
	return StockEntry{}, fmt.Errorf("%w: stock for product %d at %s", httpx.ErrNotFound, productID, store)
}
