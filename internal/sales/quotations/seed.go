package quotations

func seedQuotations() []Quotation {
	return []Quotation{
		{ID: 1, Customer: "John Doe", Amount: 1898, Status: StatusPending, Date: "2023-10-01", Items: []string{"iPhone 14", "Samsung Galaxy S23"}},
		{ID: 2, Customer: "Jane Smith", Amount: 149, Status: StatusConverted, Date: "2023-10-02", Items: []string{"IKEA Chair"}},
	}
}
