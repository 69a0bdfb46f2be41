package reports

import "context"

// Service serves the read-only report tabs.
type Service struct {
	sales     []SalesRow
	movements []MovementRow
	invoices  []InvoiceRow
	pnl       ProfitAndLoss
}

func NewService() *Service {
	return &Service{
		sales:     seedSalesRows(),
		movements: seedMovementRows(),
		invoices:  seedInvoiceRows(),
		pnl:       seedProfitAndLoss(),
	}
}

func (s *Service) Sales(ctx context.Context) []SalesRow {
	out := make([]SalesRow, len(s.sales))
	copy(out, s.sales)
	return out
}

func (s *Service) Movements(ctx context.Context) []MovementRow {
	out := make([]MovementRow, len(s.movements))
	copy(out, s.movements)
	return out
}

func (s *Service) Invoices(ctx context.Context) []InvoiceRow {
	out := make([]InvoiceRow, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Service) ProfitAndLoss(ctx context.Context) ProfitAndLoss {
	return s.pnl
}
