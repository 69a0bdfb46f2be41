package quotations

// QuotationStatus tracks whether a quote has been turned into an invoice.
type QuotationStatus string

const (
	StatusPending   QuotationStatus = "Pending"
	StatusConverted QuotationStatus = "Converted"
)

// Quotation is a priced offer to a customer.
type Quotation struct {
	ID       int64           `json:"id"`
	Customer string          `json:"customer"`
	Amount   float64         `json:"amount"`
	Status   QuotationStatus `json:"status"`
	Date     string          `json:"date"`
	Items    []string        `json:"items"`
}

// CanTransition reports whether the quotation may move to next. Only
// pending quotations convert, and conversion is final.
func (q Quotation) CanTransition(next QuotationStatus) bool {
	return q.Status == StatusPending && next == StatusConverted
}
