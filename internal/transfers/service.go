package transfers

import (
	"context"
	"fmt"
	"time"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Transfer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Transfer, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateTransferRequest) (Transfer, error) {
	if err := shared.Validate(req); err != nil {
		return Transfer{}, err
	}
	if !shared.ValidStore(req.FromStore) || !shared.ValidStore(req.ToStore) {
		return Transfer{}, fmt.Errorf("%w: unknown store", httpx.ErrValidation)
	}
	return s.repo.Prepend(ctx, Transfer{
		Product:   req.Product,
		FromStore: req.FromStore,
		ToStore:   req.ToStore,
		Qty:       req.Qty,
		Status:    StatusPending,
		Date:      s.now().Format("2006-01-02"),
	})
}

// Approve marks a pending transfer approved. Stock balances are not touched.
func (s *Service) Approve(ctx context.Context, id int64) (Transfer, error) {
	return s.transition(ctx, id, StatusApproved)
}

// Decline marks a pending transfer declined.
func (s *Service) Decline(ctx context.Context, id int64) (Transfer, error) {
	return s.transition(ctx, id, StatusDeclined)
}

func (s *Service) transition(ctx context.Context, id int64, next TransferStatus) (Transfer, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Transfer{}, err
	}
	if !existing.CanTransition(next) {
		return Transfer{}, fmt.Errorf("%w: transfer %d is %s", httpx.ErrInvalidStatus, id, existing.Status)
	}
	return s.repo.SetStatus(ctx, id, next)
}
