package transfers

type CreateTransferRequest struct {
	Product   string `json:"product" validate:"required"`
	FromStore string `json:"fromStore" validate:"required"`
	ToStore   string `json:"toStore" validate:"required"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
}
