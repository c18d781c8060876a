package config

import "time"

// Theme selects the initial color scheme of a statically built page.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config is the top-level textflux-site configuration, corresponding to .textflux.yml.
type Config struct {
	SiteTitle        string          `yaml:"site_title" koanf:"site_title"`
	Description      string          `yaml:"description" koanf:"description"`
	BaseURL          string          `yaml:"base_url" koanf:"base_url"`
	OutputDir        string          `yaml:"output_dir" koanf:"output_dir"`
	Port             int             `yaml:"port" koanf:"port"`
	Theme            Theme           `yaml:"theme" koanf:"theme"`
	TooltipPosition  string          `yaml:"tooltip_position" koanf:"tooltip_position"`
	Highlight        HighlightConfig `yaml:"highlight" koanf:"highlight"`
	Assets           []string        `yaml:"assets" koanf:"assets"`
	LogLevel         string          `yaml:"log_level" koanf:"log_level"`
	AllowAllOrigins  bool            `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ClipboardTimeout time.Duration   `yaml:"clipboard_timeout" koanf:"clipboard_timeout"`
}

// HighlightConfig names the chroma styles used for code samples in each theme.
type HighlightConfig struct {
	Dark  string `yaml:"dark" koanf:"dark"`
	Light string `yaml:"light" koanf:"light"`
}
