package inventory

import (
	"context"
	"fmt"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, req ListStockRequest) ([]StockEntry, error) {
	if req.Store != "" && !shared.ValidStore(req.Store) {
		return nil, fmt.Errorf("%w: unknown store %q", httpx.ErrValidation, req.Store)
	}
	return s.repo.List(ctx, req)
}

// Adjust applies add/reduce to one (product, store) balance. Reductions clamp
// at zero; stock never goes negative.
func (s *Service) Adjust(ctx context.Context, req AdjustStockRequest) (StockEntry, error) {
	if err := shared.Validate(req); err != nil {
		return StockEntry{}, err
	}
	if !shared.ValidStore(req.Store) {
		return StockEntry{}, fmt.Errorf("%w: unknown store %q", httpx.ErrValidation, req.Store)
	}

	current, err := s.repo.Get(ctx, req.ProductID, req.Store)
	if err != nil {
		return StockEntry{}, err
	}

	next := current.Stock
	switch req.Op {
	case OpAdd:
		next += req.Quantity
	case OpReduce:
		next -= req.Quantity
		if next < 0 {
			next = 0
		}
	}

	return s.repo.SetStock(ctx, req.ProductID, req.Store, next)
}
