package categories

func seedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Electronics", Slug: "electronics", Parent: "None", Count: 12},
		{ID: 2, Name: "Laptops", Slug: "laptops", Parent: "Electronics", Count: 6},
		{ID: 3, Name: "Furniture", Slug: "furniture", Parent: "None", Count: 8},
		{ID: 4, Name: "Kitchen", Slug: "kitchen", Parent: "None", Count: 9},
		{ID: 5, Name: "Phones", Slug: "phones", Parent: "Electronics", Count: 10},
		{ID: 6, Name: "Accessories", Slug: "accessories", Parent: "Electronics", Count: 4},
		{ID: 7, Name: "Chairs", Slug: "chairs", Parent: "Furniture", Count: 7},
		{ID: 8, Name: "Tables", Slug: "tables", Parent: "Furniture", Count: 5},
		{ID: 9, Name: "Home Decor", Slug: "home-decor", Parent: "None", Count: 11},
		{ID: 10, Name: "Audio", Slug: "audio", Parent: "Electronics", Count: 3},
	}
}
