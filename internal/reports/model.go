package reports

// SalesRow is one line of the sales report tab.
type SalesRow struct {
	Date  string  `json:"date"`
	Store string  `json:"store"`
	Total float64 `json:"total"`
	Items int     `json:"items"`
}

// MovementRow is one line of the inventory movement tab. Movement keeps
// its signed string form ("+10", "-5") as rendered.
type MovementRow struct {
	Product  string `json:"product"`
	Movement string `json:"movement"`
	Reason   string `json:"reason"`
	Date     string `json:"date"`
}

// InvoiceRow is one line of the invoice status tab.
type InvoiceRow struct {
	ID       int64   `json:"id"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

// ProfitAndLoss is the P&L summary tab.
type ProfitAndLoss struct {
	Revenue     float64 `json:"revenue"`
	CostOfGoods float64 `json:"costOfGoods"`
	Expenses    float64 `json:"expenses"`
	Profit      float64 `json:"profit"`
}

// Tabs are the report views in display order.
var Tabs = []string{"sales", "inventory", "invoices", "pnl"}
