package inventory

// StockEntry is one per-store balance line. Identity is the (ProductID,
// Store) pair; there is no single surrogate id.
type StockEntry struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Store       string `json:"store"`
	Stock       int    `json:"stock"`
}

// AdjustOp is the direction of a stock adjustment.
type AdjustOp string

const (
	OpAdd    AdjustOp = "add"
	OpReduce AdjustOp = "reduce"
)

// AdjustReason mirrors the fixed reason choices of the adjustment dialog.
var AdjustReasons = []string{"purchase", "damaged", "return", "transfer", "other"}
