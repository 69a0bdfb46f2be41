package quotations

type CreateQuotationRequest struct {
	Customer string  `json:"customer" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Items    string  `json:"items" validate:"omitempty"`
}
