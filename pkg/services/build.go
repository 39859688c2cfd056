package services

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"demo-gallery/pkg/config"
)

type manifestEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cover       string `json:"cover,omitempty"`
	Href        string `json:"href"`
}

type galleryManifest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	BaseURL     string          `json:"base_url,omitempty"`
	Cards       []manifestEntry `json:"cards"`
}

// BuildGallery renders every demo card into the public directory: one HTML
// page per card, covers copied alongside, and a gallery.json manifest for the
// index page.
func BuildGallery() (error, string) {
	cards, err := GetGalleryCache()
	if err != nil {
		return err, "failed to load demo cards"
	}
	siteCfg, err := LoadSiteConfig()
	if err != nil {
		return err, "failed to load site config"
	}

	coversOut := filepath.Join(config.PublicPath, "covers")
	if err := os.MkdirAll(coversOut, 0755); err != nil {
		return err, "failed to create output directory"
	}

	var log strings.Builder
	manifest := galleryManifest{
		Title:       siteCfg.Title,
		Description: siteCfg.Description,
		BaseURL:     siteCfg.BaseURL,
		Cards:       make([]manifestEntry, 0, len(cards)),
	}

	for _, card := range cards {
		content, err := os.ReadFile(card.Path)
		if err != nil {
			return err, "failed to read " + card.Path
		}
		_, body, err := ParseFrontMatter(content)
		if err != nil {
			return err, "failed to parse " + card.Path
		}
		rendered, err := RenderMarkdown(body)
		if err != nil {
			return err, "failed to render " + card.Path
		}

		page := fmt.Sprintf(
			"<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
			html.EscapeString(card.Title), rendered,
		)
		outPath := filepath.Join(config.PublicPath, card.ID+".html")
		if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
			return err, "failed to write " + outPath
		}

		coverRef := ""
		if card.Cover != "" {
			coverRef = "covers/" + filepath.Base(card.Cover)
			img, err := os.ReadFile(card.Cover)
			if err != nil {
				return err, "failed to read cover " + card.Cover
			}
			if err := os.WriteFile(filepath.Join(coversOut, filepath.Base(card.Cover)), img, 0644); err != nil {
				return err, "failed to copy cover " + card.Cover
			}
		}

		manifest.Cards = append(manifest.Cards, manifestEntry{
			ID:          card.ID,
			Title:       card.Title,
			Description: card.Description,
			Cover:       coverRef,
			Href:        card.ID + ".html",
		})
		fmt.Fprintf(&log, "built %s -> %s\n", card.Path, outPath)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err, "failed to encode manifest"
	}
	manifestPath := filepath.Join(config.PublicPath, "gallery.json")
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return err, "failed to write manifest"
	}
	fmt.Fprintf(&log, "wrote %s (%d cards)\n", manifestPath, len(manifest.Cards))

	return nil, log.String()
}

// CreateDemo writes a new demo markdown skeleton under the content directory.
func CreateDemo(relPath string) (error, string) {
	contentDir, err := ContentRoot()
	if err != nil {
		return err, "failed to load site config"
	}

	fullPath := SafeJoin(contentDir, "", relPath)
	if fullPath == "" {
		return fmt.Errorf("invalid demo path"), "Invalid demo path"
	}
	if _, err := os.Stat(fullPath); err == nil {
		return os.ErrExist, "File already exists"
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err, "failed to create demo directory"
	}

	title, err := resolveTitle(FrontMatter{}, fullPath)
	if err != nil {
		return err, "failed to derive title"
	}
	skeleton := fmt.Sprintf("---\ntitle: %s\n---\n\nDescribe the demo here.\n", title)
	if err := os.WriteFile(fullPath, []byte(skeleton), 0644); err != nil {
		return err, "failed to write " + fullPath
	}

	InvalidateGallery()
	return nil, "created " + relPath
}
