package quotations

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Quotation, error)
	Get(ctx context.Context, id int64) (Quotation, error)
	Prepend(ctx context.Context, quotation Quotation) (Quotation, error)
	SetStatus(ctx context.Context, id int64, status QuotationStatus) (Quotation, error)
}

type repository struct {
	mu    sync.RWMutex
	items []Quotation
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedQuotations()
	var maxID int64
	for _, q := range items {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context) ([]Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Quotation, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.items {
		if q.ID == id {
			return q, nil
		}
	}
	return Quotation{}, fmt.Errorf("%w: quotation %d", httpx.ErrNotFound, id)
}

// Prepend inserts at the head; the panel shows newest quotes first.
func (r *repository) Prepend(ctx context.Context, quotation Quotation) (Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quotation.ID = r.seq.Next()
	r.items = append([]Quotation{quotation}, r.items...)
	return quotation, nil
}

func (r *repository) SetStatus(ctx context.Context, id int64, status QuotationStatus) (Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, q := range r.items {
		if q.ID == id {
			r.items[i].Status = status
			return r.items[i], nil
		}
	}
	return Quotation{}, fmt.Errorf("%w: quotation %d", httpx.ErrNotFound, id)
}
