package accounting

func seedInvoices() []Invoice {
	return []Invoice{
		{ID: 1, Customer: "John Doe", Amount: 1898, Status: StatusPendingApproval, Date: "2023-10-01", DueDate: "2023-10-15"},
		{ID: 2, Customer: "Jane Smith", Amount: 149, Status: StatusApproved, Date: "2023-10-02", DueDate: "2023-10-16"},
		{ID: 3, Customer: "Bob Johnson", Amount: 2599, Status: StatusPaid, Date: "2023-09-28", DueDate: "2023-10-12"},
		{ID: 4, Customer: "Alice Brown", Amount: 799, Status: StatusOverdue, Date: "2023-09-20", DueDate: "2023-10-04"},
	}
}
