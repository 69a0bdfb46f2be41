package transfers

// TransferStatus is the state of a transfer request.
type TransferStatus string

const (
	StatusPending  TransferStatus = "Pending"
	StatusApproved TransferStatus = "Approved"
	StatusDeclined TransferStatus = "Declined"
)

// Transfer is a stock movement request between two stores. Approving one does
// not move stock; the inventory panel owns balances and the linkage is a
// known stand-in.
type Transfer struct {
	ID        int64          `json:"id"`
	Product   string         `json:"product"`
	FromStore string         `json:"fromStore"`
	ToStore   string         `json:"toStore"`
	Qty       int            `json:"qty"`
	Status    TransferStatus `json:"status"`
	Date      string         `json:"date"`
}

// CanTransition reports whether a transfer may move to next. Both approval
// and decline are terminal.
func (t Transfer) CanTransition(next TransferStatus) bool {
	return t.Status == StatusPending && (next == StatusApproved || next == StatusDeclined)
}
