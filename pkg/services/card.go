package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"demo-gallery/pkg/models"
)

// imageLinkRe matches inline markdown images; only the link target is used.
var imageLinkRe = regexp.MustCompile(`!\[[^\]]*\]\(([^)]+)\)`)

// LoadCard reads one demo markdown file and resolves its display metadata.
// Resolution is staged in a fixed order (cover, id, title, description,
// description defaulting to the resolved title) and the record is built once
// all four values are known. A failed load yields no card.
func LoadCard(path string) (models.DemoCard, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.DemoCard{}, fmt.Errorf("%w: %s: %v", ErrCardNotFound, path, err)
	}

	fm, _, err := ParseFrontMatter(content)
	if err != nil {
		return models.DemoCard{}, fmt.Errorf("%s: %w", path, err)
	}

	cover, err := resolveCover(fm, path, string(content))
	if err != nil {
		return models.DemoCard{}, err
	}
	id, err := resolveID(fm, path)
	if err != nil {
		return models.DemoCard{}, err
	}
	title, err := resolveTitle(fm, path)
	if err != nil {
		return models.DemoCard{}, err
	}
	description, err := resolveDescription(fm, title)
	if err != nil {
		return models.DemoCard{}, err
	}

	return models.DemoCard{
		Path:        path,
		Cover:       cover,
		ID:          id,
		Title:       title,
		Description: description,
	}, nil
}

// resolveCover prefers an explicit front-matter cover, which must exist.
// Without one it falls back to the first inline image link in the document
// whose target exists on disk. No cover at all is fine.
func resolveCover(fm FrontMatter, path, content string) (string, error) {
	dir := filepath.Dir(path)

	cover, ok, err := fm.Lookup("cover")
	if err != nil {
		return "", err
	}
	if ok {
		resolved := resolvePath(dir, cover)
		if !isFile(resolved) {
			return "", fmt.Errorf("%w: %s (from %s)", ErrInvalidCover, resolved, path)
		}
		return resolved, nil
	}

	for _, m := range imageLinkRe.FindAllStringSubmatch(content, -1) {
		resolved := resolvePath(dir, m[1])
		if isFile(resolved) {
			return resolved, nil
		}
	}
	return "", nil
}

// resolveID uses the explicit id when present. An explicit id that has the
// shape of an auto-derived id but belongs to some other filename would be
// indistinguishable from a generated anchor, so it is rejected.
func resolveID(fm FrontMatter, path string) (string, error) {
	id, ok, err := fm.Lookup("id")
	if err != nil {
		return "", err
	}
	derived := DeriveDemoID(path)
	if !ok || id == "" {
		return derived, nil
	}
	if looksDerived(id) && id != derived {
		return "", fmt.Errorf("%w: %q (auto id for %s is %q)", ErrAmbiguousID, id, path, derived)
	}
	return id, nil
}

func resolveTitle(fm FrontMatter, path string) (string, error) {
	title, ok, err := fm.Lookup("title")
	if err != nil {
		return "", err
	}
	if ok {
		return title, nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name != "" {
		r, size := utf8.DecodeRuneInString(name)
		name = strings.ToUpper(string(r)) + name[size:]
	}
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name), nil
}

func resolveDescription(fm FrontMatter, title string) (string, error) {
	description, ok, err := fm.Lookup("description")
	if err != nil {
		return "", err
	}
	if ok {
		return description, nil
	}
	return title, nil
}

// DeriveDemoID is the fallback id for a demo file: filename without
// extension, spaces replaced by hyphens, "-1" appended. This mirrors the
// anchor ids the generated documentation assigns to demo headings.
func DeriveDemoID(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.ReplaceAll(name, " ", "-") + "-1"
}

// looksDerived reports whether id has the auto-derived shape: a trailing
// "-1" and no spaces.
func looksDerived(id string) bool {
	return strings.HasSuffix(id, "-1") && !strings.Contains(id, " ")
}

func resolvePath(dir, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(dir, target)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
