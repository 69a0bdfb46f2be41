package accounting

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	Prepend(ctx context.Context, invoice Invoice) (Invoice, error)
	SetStatus(ctx context.Context, id int64, status InvoiceStatus) (Invoice, error)
}

type repository struct {
	mu    sync.RWMutex
	items []Invoice
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedInvoices()
	var maxID int64
	for _, inv := range items {
		if inv.ID > maxID {
			maxID = inv.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Invoice, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.items {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, fmt.Errorf("%w: invoice %d", httpx.ErrNotFound, id)
}

// Prepend inserts at the head; newest invoices list first.
func (r *repository) Prepend(ctx context.Context, invoice Invoice) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice.ID = r.seq.Next()
	r.items = append([]Invoice{invoice}, r.items...)
	return invoice, nil
}

func (r *repository) SetStatus(ctx context.Context, id int64, status InvoiceStatus) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inv := range r.items {
		if inv.ID == id {
			r.items[i].Status = status
			return r.items[i], nil
		}
	}
	return Invoice{}, fmt.Errorf("%w: invoice %d", httpx.ErrNotFound, id)
}
