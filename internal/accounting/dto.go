package accounting

// CreateInvoiceRequest carries the new-invoice form payload. DueDate is
// optional and defaults to fourteen days after the invoice date.
type CreateInvoiceRequest struct {
	Customer string  `json:"customer" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	DueDate  string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}
