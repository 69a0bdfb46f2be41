package sales

type CreateCartRequest struct {
	Store string `json:"store" validate:"omitempty"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type SetQtyRequest struct {
	Qty int `json:"qty"`
}

type SetDiscountRequest struct {
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card credit"`
}

// CartView is the cart plus its derived totals, rendered to two decimals.
type CartView struct {
	Cart
	Subtotal string `json:"subtotal"`
	Total    string `json:"total"`
}

func NewCartView(c Cart) CartView {
	return CartView{
		Cart:     c,
		Subtotal: c.Subtotal().StringFixed(2),
		Total:    c.Total().StringFixed(2),
	}
}
