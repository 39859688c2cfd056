package services

import (
	"path/filepath"
	"testing"
)

func TestLoadSiteConfig_Defaults(t *testing.T) {
	setupGallery(t)

	cfg, err := LoadSiteConfig()
	if err != nil {
		t.Fatalf("LoadSiteConfig: %v", err)
	}
	if cfg.Title != "Demo Gallery" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Demo Gallery")
	}
	if cfg.ContentDir != "demos" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "demos")
	}
	if cfg.CoversDir != "covers" {
		t.Errorf("CoversDir = %q, want %q", cfg.CoversDir, "covers")
	}
}

func TestLoadSiteConfig_YAML(t *testing.T) {
	demos := setupGallery(t)
	root := filepath.Dir(demos)
	writeDemo(t, root, "config.yml", "title: Widget Demos\ncontent_dir: examples\n")

	cfg, err := LoadSiteConfig()
	if err != nil {
		t.Fatalf("LoadSiteConfig: %v", err)
	}
	if cfg.Title != "Widget Demos" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Widget Demos")
	}
	if cfg.ContentDir != "examples" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "examples")
	}
	if cfg.CoversDir != "covers" {
		t.Errorf("CoversDir = %q, want default %q", cfg.CoversDir, "covers")
	}
}

func TestLoadSiteConfig_TOML(t *testing.T) {
	demos := setupGallery(t)
	root := filepath.Dir(demos)
	writeDemo(t, root, "config.toml", "title = \"TOML Demos\"\nbase_url = \"https://example.com/demos\"\n")

	cfg, err := LoadSiteConfig()
	if err != nil {
		t.Fatalf("LoadSiteConfig: %v", err)
	}
	if cfg.Title != "TOML Demos" {
		t.Errorf("Title = %q, want %q", cfg.Title, "TOML Demos")
	}
	if cfg.BaseURL != "https://example.com/demos" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://example.com/demos")
	}
}

func TestSafeJoin(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"a.md", filepath.Join("root", "sub", "a.md")},
		{"nested/b.md", filepath.Join("root", "sub", "nested", "b.md")},
		{"../escape.md", ""},
		{"nested/../../escape.md", ""},
	}
	for _, tt := range tests {
		if got := SafeJoin("root", "sub", tt.target); got != tt.want {
			t.Errorf("SafeJoin(root, sub, %q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}
