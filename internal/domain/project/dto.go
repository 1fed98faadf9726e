package project

// UpsertRequest replaces a project record wholesale; omitted order means
// "append after existing projects"
type UpsertRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Medium      string   `json:"medium" validate:"omitempty,max=200"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Images      []string `json:"images" validate:"omitempty,dive,max=500"`
	Videos      []string `json:"videos" validate:"omitempty,dive,max=500"`
	PDFs        []string `json:"pdfs" validate:"omitempty,dive,max=500"`
	Order       *int     `json:"order" validate:"omitempty,gte=0"`
}

// ReorderRequest carries project ids in their new display order
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
