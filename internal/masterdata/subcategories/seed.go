package subcategories

func seedSubcategories() []Subcategory {
	return []Subcategory{
		{ID: 1, Name: "Laptops", Slug: "laptops", Parent: "Electronics", Count: 6},
		{ID: 2, Name: "Phones", Slug: "phones", Parent: "Electronics", Count: 10},
		{ID: 3, Name: "Chairs", Slug: "chairs", Parent: "Furniture", Count: 7},
		{ID: 4, Name: "Tables", Slug: "tables", Parent: "Furniture", Count: 5},
		{ID: 5, Name: "Headphones", Slug: "headphones", Parent: "Audio", Count: 3},
		{ID: 6, Name: "Cookware", Slug: "cookware", Parent: "Kitchen", Count: 9},
		{ID: 7, Name: "Monitors", Slug: "monitors", Parent: "Electronics", Count: 4},
	}
}
