// Package nav exposes the fixed panel registry that the admin sidebar
// navigates.
package nav

// Panel identifies one admin panel.
type Panel struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Panels returns the ordered panel set. The order matches the sidebar.
func Panels() []Panel {
	return []Panel{
		{Key: "categories", Label: "Categories", Path: "/api/categories"},
		{Key: "subcategories", Label: "Subcategories", Path: "/api/subcategories"},
		{Key: "brands", Label: "Brands", Path: "/api/brands"},
		{Key: "products", Label: "Products", Path: "/api/products"},
		{Key: "stock", Label: "Stock", Path: "/api/stock"},
		{Key: "sales", Label: "Sales", Path: "/api/sales"},
		{Key: "accounting", Label: "Accounting", Path: "/api/accounting"},
		{Key: "reports", Label: "Reports", Path: "/api/reports"},
		{Key: "quotations", Label: "Quotations", Path: "/api/quotations"},
		{Key: "transfers", Label: "Transfers", Path: "/api/transfers"},
		{Key: "users", Label: "Users", Path: "/api/users"},
	}
}
