package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/config"
	"github.com/textflux/textflux-site/internal/server"
	"github.com/textflux/textflux-site/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live product page",
	Long: `Starts an HTTP server for the product page. Each open page gets a
server-side session over a websocket: the menu, theme and copy feedback are
driven by the server and pushed back as HTML fragments. The config file is
watched and the page re-rendered when it changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-watch", false, "do not reload when the config file changes")
	serveCmd.Flags().String("assets", ".", "directory served for paths other than the page")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	assetDir, _ := cmd.Flags().GetString("assets")

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	renderer, err := newRenderer(cfg, true)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	srv := server.New(server.Config{
		Port:             cfg.Port,
		AllowAll:         cfg.AllowAllOrigins,
		Light:            !cfg.DarkByDefault(),
		ClipboardTimeout: cfg.ClipboardTimeout,
		AssetDir:         assetDir,
	}, renderer, log)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Shutdown failed", zap.Error(err))
		}
	}()

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
		go func() {
			err := config.Watch(ctx, cfgFile, config.DefaultDebounce, log.Named("config"), func(next *config.Config) {
				r, err := newRenderer(next, true)
				if err != nil {
					log.Warn("Keeping previous page", zap.Error(err))
					return
				}
				srv.SetRenderer(r)
			})
			if err != nil {
				log.Warn("Config watch disabled", zap.Error(err))
			}
		}()
	}

	if open, _ := cmd.Flags().GetBool("open"); open {
		site.OpenBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
	}

	fmt.Fprintf(os.Stderr, "textflux-site %s serving on http://localhost:%d\n", Version, cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
