package subcategories

type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Parent      string `json:"parent"`
	Description string `json:"description"`
}

type UpdateSubcategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      string `json:"parent"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}
