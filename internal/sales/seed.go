package sales

func seedSales() []Sale {
	return []Sale{
		{ID: 1, Store: "Store A", Date: "2023-10-01", Total: 1898, Items: 2},
		{ID: 2, Store: "Store B", Date: "2023-10-01", Total: 149, Items: 1},
	}
}

func seedCatalog() []CatalogProduct {
	return []CatalogProduct{
		{ID: 1, Name: "iPhone 14", Price: 999},
		{ID: 2, Name: "Samsung Galaxy S23", Price: 899},
		{ID: 3, Name: "Dell XPS 13", Price: 1299},
		{ID: 4, Name: "IKEA Chair", Price: 149},
	}
}
