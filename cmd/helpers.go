package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/config"
	"github.com/textflux/textflux-site/internal/logging"
	"github.com/textflux/textflux-site/internal/site"
	"github.com/textflux/textflux-site/internal/tooltip"
)

// loadConfig reads and validates the config file. A missing file yields
// the defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `textflux-site init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger; --verbose forces debug output.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level)
}

// newRenderer builds a page renderer from the config.
func newRenderer(cfg *config.Config, live bool) (*site.Renderer, error) {
	pos, err := tooltip.ParsePosition(cfg.TooltipPosition)
	if err != nil {
		return nil, err
	}
	return site.NewRenderer(nil, site.Options{
		Title:           cfg.SiteTitle,
		Description:     cfg.Description,
		BaseURL:         cfg.BaseURL,
		HighlightDark:   cfg.Highlight.Dark,
		HighlightLight:  cfg.Highlight.Light,
		TooltipPosition: pos,
		Live:            live,
	})
}
