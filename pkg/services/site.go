package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"demo-gallery/pkg/config"
	"demo-gallery/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// LoadSiteConfig reads config.yml (or config.toml) from the gallery root.
// A missing config file is fine; defaults apply either way.
func LoadSiteConfig() (models.SiteConfig, error) {
	var cfg models.SiteConfig

	ymlPath := filepath.Join(config.GalleryPath, "config.yml")
	tomlPath := filepath.Join(config.GalleryPath, "config.toml")

	if content, err := os.ReadFile(ymlPath); err == nil {
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("config.yml: %w", err)
		}
	} else if content, err := os.ReadFile(tomlPath); err == nil {
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("config.toml: %w", err)
		}
	}

	if cfg.Title == "" {
		cfg.Title = "Demo Gallery"
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "demos"
	}
	if cfg.CoversDir == "" {
		cfg.CoversDir = "covers"
	}
	return cfg, nil
}

// ContentRoot is the directory holding the demo markdown files.
func ContentRoot() (string, error) {
	cfg, err := LoadSiteConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(config.GalleryPath, cfg.ContentDir), nil
}

// CoversRoot is the directory holding shared cover images.
func CoversRoot() (string, error) {
	cfg, err := LoadSiteConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(config.GalleryPath, cfg.CoversDir), nil
}
