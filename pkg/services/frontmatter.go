package services

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---\n"

// recognizedKeys are the only front-matter keys a demo card may carry.
var recognizedKeys = map[string]bool{
	"cover":       true,
	"id":          true,
	"title":       true,
	"description": true,
}

// FrontMatter is the parsed metadata block of one demo file.
type FrontMatter struct {
	values map[string]any
}

// ParseFrontMatter splits content on the leading "---" delimiter lines and
// decodes the enclosed YAML mapping. A file without two delimiters has no
// front matter; the returned body is then the whole content.
func ParseFrontMatter(content []byte) (FrontMatter, string, error) {
	parts := strings.SplitN(string(content), frontMatterDelim, 3)
	if len(parts) < 3 {
		return FrontMatter{}, string(content), nil
	}

	var values map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &values); err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return FrontMatter{values: values}, parts[2], nil
}

// Lookup returns the string value for one of the recognized keys. The second
// return reports whether the key was present. Asking for anything outside the
// recognized set is a programmer error.
func (fm FrontMatter) Lookup(key string) (string, bool, error) {
	if !recognizedKeys[key] {
		return "", false, fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	v, ok := fm.values[key]
	if !ok || v == nil {
		return "", false, nil
	}
	if s, ok := v.(string); ok {
		return s, true, nil
	}
	// Scalars like `id: 123` come back typed; flatten them.
	return fmt.Sprint(v), true, nil
}
