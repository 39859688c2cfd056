package services

import "errors"

var (
	// ErrCardNotFound is returned when the demo markdown file does not exist
	// or cannot be read.
	ErrCardNotFound = errors.New("demo file not found")

	// ErrFrontMatter is returned when the leading front matter block is not a
	// valid YAML mapping.
	ErrFrontMatter = errors.New("invalid front matter")

	// ErrInvalidCover is returned when an explicitly configured cover does not
	// resolve to an existing file.
	ErrInvalidCover = errors.New("cover image not found")

	// ErrAmbiguousID is returned when an explicit id looks like an
	// auto-derived id for a different file, which would make cross-references
	// indistinguishable from generated anchors.
	ErrAmbiguousID = errors.New("ambiguous demo id")

	// ErrUnsupportedKey indicates a lookup of a front-matter key the gallery
	// does not define. Caller bug, not user input.
	ErrUnsupportedKey = errors.New("unsupported front matter key")

	// ErrDuplicateID is returned by the gallery builder when two demos
	// resolve to the same id.
	ErrDuplicateID = errors.New("duplicate demo id")
)
