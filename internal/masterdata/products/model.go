package products

// Product represents a sellable item. Category, Subcategory and Brand are
// plain names; nothing enforces that they exist in their own panels. Stock is
// the display-only aggregate seeded at creation.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Brand       string  `json:"brand"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}
