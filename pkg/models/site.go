package models

// SiteConfig is the gallery-level configuration, read from config.yml or
// config.toml at the gallery root.
type SiteConfig struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description,omitempty"`
	BaseURL     string `yaml:"base_url" toml:"base_url" json:"base_url,omitempty"`
	ContentDir  string `yaml:"content_dir" toml:"content_dir" json:"content_dir"`
	CoversDir   string `yaml:"covers_dir" toml:"covers_dir" json:"covers_dir"`
}
