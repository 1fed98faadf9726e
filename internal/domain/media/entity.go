package media

// Kind classifies an upload by how the ingest pipeline treats it
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindPDF   Kind = "pdf"
	KindOther Kind = "other"
)

// File describes one stored upload. It is returned to the operator so the
// stored URLs can be referenced from project records; it is never mutated
// after creation.
type File struct {
	OriginalName string  `json:"original_name"`
	StoredName   string  `json:"stored_name"`
	Path         string  `json:"path"`
	MimeType     string  `json:"mime_type"`
	SizeBytes    int64   `json:"size_bytes"`
	Kind         Kind    `json:"kind"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"` // videos only; null when extraction failed
}
