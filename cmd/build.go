package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/textflux/textflux-site/internal/config"
	"github.com/textflux/textflux-site/internal/progress"
	"github.com/textflux/textflux-site/internal/session"
	"github.com/textflux/textflux-site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static product page",
	Long:  `Renders index.html, style.css and script.js into the output directory and copies the configured assets. The static page handles the menu, copy and tooltip in the browser.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("theme", "", "initial theme: dark or light (defaults to the config)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 0, "port for the local server (defaults to the config)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		cfg.Theme = config.Theme(theme)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	renderer, err := newRenderer(cfg, false)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	gen := site.NewGenerator(renderer, cfg.OutputDir)
	gen.Assets = cfg.Assets
	gen.Reporter = progress.NewReporter()
	gen.Logger = log
	gen.State = session.InitialState()
	gen.State.ThemeDark = cfg.DarkByDefault()

	n, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d files)\n", cfg.OutputDir, n)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	open, _ := cmd.Flags().GetBool("open")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")
	return site.Serve(ctx, cfg.OutputDir, port, open, log)
}
