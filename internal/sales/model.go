package sales

import "github.com/shopspring/decimal"

// CatalogProduct is one sellable line of the point-of-sale screen.
type CatalogProduct struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartLine is one product in a cart with its quantity.
type CartLine struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Cart is a transient checkout in progress, addressed by an opaque token.
type Cart struct {
	Token           string     `json:"token"`
	Store           string     `json:"store"`
	Lines           []CartLine `json:"lines"`
	DiscountPercent float64    `json:"discountPercent"`
}

// Subtotal is the undiscounted sum of price multiplied by quantity per line.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Lines {
		sum = sum.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return sum
}

// Total applies the percentage discount to the subtotal.
func (c Cart) Total() decimal.Decimal {
	subtotal := c.Subtotal()
	discount := subtotal.Mul(decimal.NewFromFloat(c.DiscountPercent)).Div(decimal.NewFromInt(100))
	return subtotal.Sub(discount)
}

// Sale is one completed sale in the history. Items counts cart lines, not
// unit quantities.
type Sale struct {
	ID            int64   `json:"id"`
	Store         string  `json:"store"`
	Date          string  `json:"date"`
	Total         float64 `json:"total"`
	Items         int     `json:"items"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// PaymentMethods are the accepted tender types.
var PaymentMethods = []string{"cash", "card", "credit"}
