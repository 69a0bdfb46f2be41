package reports

func seedSalesRows() []SalesRow {
	return []SalesRow{
		{Date: "2023-10-01", Store: "Store A", Total: 1898, Items: 2},
		{Date: "2023-10-01", Store: "Store B", Total: 149, Items: 1},
		{Date: "2023-10-02", Store: "Store A", Total: 2599, Items: 3},
	}
}

func seedMovementRows() []MovementRow {
	return []MovementRow{
		{Product: "iPhone 14", Movement: "+10", Reason: "Purchase", Date: "2023-10-01"},
		{Product: "Samsung Galaxy S23", Movement: "-5", Reason: "Sale", Date: "2023-10-01"},
		{Product: "Dell XPS 13", Movement: "+2", Reason: "Transfer In", Date: "2023-10-02"},
	}
}

func seedInvoiceRows() []InvoiceRow {
	return []InvoiceRow{
		{ID: 1, Customer: "John Doe", Amount: 1898, Status: "Paid", Date: "2023-10-01"},
		{ID: 2, Customer: "Jane Smith", Amount: 149, Status: "Pending", Date: "2023-10-02"},
	}
}

func seedProfitAndLoss() ProfitAndLoss {
	return ProfitAndLoss{Revenue: 10000, CostOfGoods: 6000, Expenses: 2000, Profit: 2000}
}
