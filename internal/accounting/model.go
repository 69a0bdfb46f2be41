package accounting

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	StatusPendingApproval InvoiceStatus = "Pending Approval"
	StatusApproved        InvoiceStatus = "Approved"
	StatusPaid            InvoiceStatus = "Paid"
	StatusOverdue         InvoiceStatus = "Overdue"
)

// Invoice is one billing record. Date and DueDate are ISO calendar dates.
type Invoice struct {
	ID       int64         `json:"id"`
	Customer string        `json:"customer"`
	Amount   float64       `json:"amount"`
	Status   InvoiceStatus `json:"status"`
	Date     string        `json:"date"`
	DueDate  string        `json:"dueDate"`
}

// CanTransition reports whether the invoice may move to next. Approval and
// payment are one-directional; Overdue is reached only by the due-date sweep.
func (i Invoice) CanTransition(next InvoiceStatus) bool {
	switch next {
	case StatusApproved:
		return i.Status == StatusPendingApproval
	case StatusPaid:
		return i.Status == StatusApproved
	case StatusOverdue:
		return i.Status == StatusPendingApproval || i.Status == StatusApproved
	default:
		return false
	}
}
