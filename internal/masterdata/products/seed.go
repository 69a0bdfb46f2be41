package products

func seedProducts() []Product {
	return []Product{
		{ID: 1, Name: "iPhone 14", SKU: "IPH14-128", Category: "Electronics", Subcategory: "Phones", Brand: "Apple", Unit: "pcs", Price: 999, Description: "Latest iPhone model", Stock: 50},
		{ID: 2, Name: "Samsung Galaxy S23", SKU: "SGS23-256", Category: "Electronics", Subcategory: "Phones", Brand: "Samsung", Unit: "pcs", Price: 899, Description: "Android flagship", Stock: 30},
		{ID: 3, Name: "Dell XPS 13", SKU: "DXPS13-16", Category: "Electronics", Subcategory: "Laptops", Brand: "Dell", Unit: "pcs", Price: 1299, Description: "Ultrabook laptop", Stock: 20},
		{ID: 4, Name: "IKEA Chair", SKU: "IKCHR-001", Category: "Furniture", Subcategory: "Chairs", Brand: "IKEA", Unit: "pcs", Price: 149, Description: "Comfortable office chair", Stock: 15},
	}
}
