package quotations

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RenderText produces the plain-text document offered as the quotation
// download. The layout is fixed; clients print it verbatim.
func RenderText(q Quotation) string {
	amount := decimal.NewFromFloat(q.Amount).StringFixed(2)
	return fmt.Sprintf("Quotation #%d\nCustomer: %s\nDate: %s\nItems: %s\nTotal Amount: $%s\nStatus: %s",
		q.ID, q.Customer, q.Date, strings.Join(q.Items, ", "), amount, q.Status)
}
