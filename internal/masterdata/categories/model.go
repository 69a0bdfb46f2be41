package categories

// Category represents a product category. Parent is the name of another root
// category or the literal "None". Count is a display-only product count fixed
// at seed time.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      string `json:"parent"`
	Count       int    `json:"count"`
	Description string `json:"description,omitempty"`
}
