package brands

func seedBrands() []Brand {
	return []Brand{
		{ID: 1, Name: "Apple", Slug: "apple", Description: "Premium electronics brand", Count: 15},
		{ID: 2, Name: "Samsung", Slug: "samsung", Description: "Electronics and appliances", Count: 18},
		{ID: 3, Name: "Sony", Slug: "sony", Description: "Audio and video equipment", Count: 9},
		{ID: 4, Name: "IKEA", Slug: "ikea", Description: "Furniture and home décor", Count: 7},
		{ID: 5, Name: "Dell", Slug: "dell", Description: "Computers and laptops", Count: 6},
		{ID: 6, Name: "LG", Slug: "lg", Description: "Appliances and electronics", Count: 11},
	}
}
