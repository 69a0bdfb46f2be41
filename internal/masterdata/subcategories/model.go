package subcategories

// Subcategory represents a second-level category. Parent names the owning
// category; Count is a display-only product count fixed at seed time.
type Subcategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      string `json:"parent"`
	Count       int    `json:"count"`
	Description string `json:"description,omitempty"`
}
