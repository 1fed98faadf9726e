package project

// Project is one portfolio entry. Media lists hold URLs returned by the
// media ingestor, in the order the operator arranged them.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Medium      string   `json:"medium"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
	PDFs        []string `json:"pdfs"`
	Order       int      `json:"order"`
}

// DefaultRegistry is the built-in fallback used when no registry document
// exists yet, so a fresh install renders a non-empty site.
func DefaultRegistry() map[string]*Project {
	return map[string]*Project{
		"sample-project": {
			ID:          "sample-project",
			Title:       "Sample Project",
			Medium:      "Mixed media",
			Description: "Edit or delete this project to get started.",
			Images:      []string{},
			Videos:      []string{},
			PDFs:        []string{},
			Order:       1,
		},
	}
}
