package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

const defaultTermDays = 14

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	if err := shared.Validate(req); err != nil {
		return Invoice{}, err
	}

	today := s.now()
	dueDate := req.DueDate
	if dueDate == "" {
		dueDate = today.AddDate(0, 0, defaultTermDays).Format("2006-01-02")
	}

	return s.repo.Prepend(ctx, Invoice{
		Customer: req.Customer,
		Amount:   req.Amount,
		Status:   StatusPendingApproval,
		Date:     today.Format("2006-01-02"),
		DueDate:  dueDate,
	})
}

func (s *Service) Approve(ctx context.Context, id int64) (Invoice, error) {
	return s.transition(ctx, id, StatusApproved)
}

func (s *Service) MarkPaid(ctx context.Context, id int64) (Invoice, error) {
	return s.transition(ctx, id, StatusPaid)
}

// SweepOverdue moves every unpaid invoice whose due date has passed to
// Overdue and returns how many were moved.
func (s *Service) SweepOverdue(ctx context.Context, asOf time.Time) (int, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := asOf.Format("2006-01-02")
	moved := 0
	for _, inv := range invoices {
		if !inv.CanTransition(StatusOverdue) || inv.DueDate >= cutoff {
			continue
		}
		if _, err := s.repo.SetStatus(ctx, inv.ID, StatusOverdue); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}

func (s *Service) transition(ctx context.Context, id int64, next InvoiceStatus) (Invoice, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Invoice{}, err
	}
	if !existing.CanTransition(next) {
		return Invoice{}, fmt.Errorf("%w: invoice %d is %s", httpx.ErrInvalidStatus, id, existing.Status)
	}
	return s.repo.SetStatus(ctx, id, next)
}
