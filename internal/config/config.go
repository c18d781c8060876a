package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/textflux/textflux-site/internal/tooltip"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TEXTFLUX_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: TEXTFLUX_OUTPUT_DIR -> output_dir, etc.
	if err := k.Load(env.Provider("TEXTFLUX_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TEXTFLUX_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemes = map[Theme]bool{
	ThemeDark:  true,
	ThemeLight: true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be one of dark, light", c.Theme)
	}

	if _, err := tooltip.ParsePosition(c.TooltipPosition); err != nil {
		return fmt.Errorf("invalid tooltip_position: %w", err)
	}

	if c.Highlight.Dark == "" || c.Highlight.Light == "" {
		return fmt.Errorf("highlight.dark and highlight.light are required")
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.ClipboardTimeout <= 0 {
		return fmt.Errorf("clipboard_timeout must be positive")
	}

	return nil
}

// DarkByDefault reports whether a statically built page starts dark.
func (c *Config) DarkByDefault() bool {
	return c.Theme != ThemeLight
}
