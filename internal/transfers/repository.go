package transfers

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Transfer, error)
	Get(ctx context.Context, id int64) (Transfer, error)
	Prepend(ctx context.Context, transfer Transfer) (Transfer, error)
	SetStatus(ctx context.Context, id int64, status TransferStatus) (Transfer, error)
}

type repository struct {
	mu    sync.RWMutex
	items []Transfer
	seq   *shared.Sequence
}

func NewRepository() Repository {
	items := seedTransfers()
	var maxID int64
	for _, t := range items {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return &repository{items: items, seq: shared.NewSequence(maxID)}
}

func (r *repository) List(ctx context.Context) ([]Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Transfer, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return Transfer{}, fmt.Errorf("%w: transfer %d", httpx.ErrNotFound, id)
}

// Prepend inserts at the head; the panel shows newest requests first.
func (r *repository) Prepend(ctx context.Context, transfer Transfer) (Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	transfer.ID = r.seq.Next()
	r.items = append([]Transfer{transfer}, r.items...)
	return transfer, nil
}

func (r *repository) SetStatus(ctx context.Context, id int64, status TransferStatus) (Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.items {
		if t.ID == id {
			r.items[i].Status = status
			return r.items[i], nil
		}
	}
	return Transfer{}, fmt.Errorf("%w: transfer %d", httpx.ErrNotFound, id)
}
