package inventory

// ListStockRequest filters the stock listing. Store empty means all stores.
type ListStockRequest struct {
	Search string
	Store  string
}

// AdjustStockRequest applies a signed quantity change to one balance.
type AdjustStockRequest struct {
	ProductID int64    `json:"product_id" validate:"required,gt=0"`
	Store     string   `json:"store" validate:"required"`
	Op        AdjustOp `json:"op" validate:"required,oneof=add reduce"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	Reason    string   `json:"reason" validate:"omitempty,oneof=purchase damaged return transfer other"`
}
