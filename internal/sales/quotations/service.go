package quotations

import (
	"context"
	"fmt"
	"strings"
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

func (s *Service) List(ctx context.Context) ([]Quotation, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Quotation, error) {
	return s.repo.Get(ctx, id)
}

// Create records a pending quotation. Items arrive as one comma-separated
// string and are split into trimmed names.
func (s *Service) Create(ctx context.Context, req CreateQuotationRequest) (Quotation, error) {
	if err := shared.Validate(req); err != nil {
		return Quotation{}, err
	}
	return s.repo.Prepend(ctx, Quotation{
		Customer: req.Customer,
		Amount:   req.Amount,
		Status:   StatusPending,
		Date:     s.now().Format("2006-01-02"),
		Items:    splitItems(req.Items),
	})
}

// Convert marks a pending quotation converted. No invoice is created from
// it; the invoices collection is independent.
func (s *Service) Convert(ctx context.Context, id int64) (Quotation, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Quotation{}, err
	}
	if !existing.CanTransition(StatusConverted) {
		return Quotation{}, fmt.Errorf("%w: quotation %d is %s", httpx.ErrInvalidStatus, id, existing.Status)
	}
	return s.repo.SetStatus(ctx, id, StatusConverted)
}

func splitItems(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			items = append(items, name)
		}
	}
	return items
}
