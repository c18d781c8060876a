package config

import "time"

// DefaultAssets are glob patterns copied into the built site by default.
var DefaultAssets = []string{
	"assets/**/*.{png,svg,ico,webp}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:       "Textflux: rich text editor for React",
		Description:     "Textflux is a rich text editor for React with mentions, emoji, media uploads, code blocks and isolated CSS.",
		OutputDir:       "dist",
		Port:            8080,
		Theme:           ThemeDark,
		TooltipPosition: "top",
		Highlight: HighlightConfig{
			Dark:  "monokai",
			Light: "github",
		},
		Assets:           DefaultAssets,
		LogLevel:         "info",
		ClipboardTimeout: 3 * time.Second,
	}
}
