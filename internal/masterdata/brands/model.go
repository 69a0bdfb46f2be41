package brands

// Brand represents a product brand. Count is a display-only product count
// fixed at seed time.
type Brand struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}
