package models

// DemoCard describes how one demo markdown file is displayed in the gallery.
// It is constructed once per file and never mutated afterwards; regenerating
// the gallery builds fresh records.
type DemoCard struct {
	Path        string `json:"path"`
	Cover       string `json:"cover,omitempty"` // empty when no cover image is available
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDirty     bool   `json:"is_dirty"`
}
