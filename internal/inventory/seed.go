package inventory

func seedStock() []StockEntry {
	return []StockEntry{
		{ProductID: 1, ProductName: "iPhone 14", Store: "Store A", Stock: 50},
		{ProductID: 1, ProductName: "iPhone 14", Store: "Store B", Stock: 30},
		{ProductID: 1, ProductName: "iPhone 14", Store: "Store C", Stock: 20},
		{ProductID: 2, ProductName: "Samsung Galaxy S23", Store: "Store A", Stock: 40},
		{ProductID: 2, ProductName: "Samsung Galaxy S23", Store: "Store B", Stock: 25},
		{ProductID: 2, ProductName: "Samsung Galaxy S23", Store: "Store C", Stock: 15},
		{ProductID: 3, ProductName: "Dell XPS 13", Store: "Store A", Stock: 20},
		{ProductID: 3, ProductName: "Dell XPS 13", Store: "Store B", Stock: 10},
		{ProductID: 3, ProductName: "Dell XPS 13", Store: "Store C", Stock: 5},
		{ProductID: 4, ProductName: "IKEA Chair", Store: "Store A", Stock: 15},
		{ProductID: 4, ProductName: "IKEA Chair", Store: "Store B", Stock: 10},
		{ProductID: 4, ProductName: "IKEA Chair", Store: "Store C", Stock: 8},
	}
}
