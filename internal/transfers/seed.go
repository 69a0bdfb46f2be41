package transfers

func seedTransfers() []Transfer {
	return []Transfer{
		{ID: 1, Product: "iPhone 14", FromStore: "Store A", ToStore: "Store B", Qty: 5, Status: StatusPending, Date: "2023-10-01"},
		{ID: 2, Product: "Dell XPS 13", FromStore: "Store B", ToStore: "Store C", Qty: 2, Status: StatusApproved, Date: "2023-10-02"},
		{ID: 3, Product: "IKEA Chair", FromStore: "Store C", ToStore: "Store A", Qty: 3, Status: StatusDeclined, Date: "2023-10-03"},
	}
}
