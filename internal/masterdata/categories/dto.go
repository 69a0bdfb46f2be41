package categories

// CreateCategoryRequest carries the new-category form payload.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Parent      string `json:"parent"`
	Description string `json:"description"`
}

// UpdateCategoryRequest is the full record handed back by the edit dialog.
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      string `json:"parent"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}
