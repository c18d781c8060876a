package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/live"
	"github.com/textflux/textflux-site/internal/session"
	"github.com/textflux/textflux-site/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
	// Light serves pages and sessions in the light theme.
	Light            bool
	ClipboardTimeout time.Duration
	// AssetDir, when set, serves files for any path not handled by the
	// page routes.
	AssetDir string
}

// Server serves the live page: the document, its stylesheet and script,
// and the websocket that drives each page session.
type Server struct {
	cfg        Config
	log        *zap.Logger
	renderer   atomic.Pointer[site.Renderer]
	live       *live.Handler
	router     chi.Router
	httpServer *http.Server
}

// New creates a server rendering pages with r. The renderer should be
// built with site.Options.Live set.
func New(cfg Config, r *site.Renderer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, log: log}
	s.renderer.Store(r)

	var checkOrigin func(*http.Request) bool
	if cfg.AllowAll {
		checkOrigin = func(*http.Request) bool { return true }
	}
	s.live = live.NewHandler(live.Options{
		Renderer:         s.Renderer,
		Light:            cfg.Light,
		ClipboardTimeout: cfg.ClipboardTimeout,
		Logger:           log.Named("live"),
		CheckOrigin:      checkOrigin,
	})

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The websocket stays outside the timeout middleware; it lives as long
	// as the page.
	r.Handle("/ws", s.live)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/", s.handlePage)
		r.Get("/style.css", handleAsset("text/css; charset=utf-8", site.Stylesheet()))
		r.Get("/script.js", handleAsset("text/javascript; charset=utf-8", site.Script()))
		if s.cfg.AssetDir != "" {
			r.Handle("/*", http.FileServer(http.Dir(s.cfg.AssetDir)))
		}
	})

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st := session.InitialState()
	st.ThemeDark = !s.cfg.Light

	var buf bytes.Buffer
	if err := s.Renderer().Page(&buf, st); err != nil {
		s.log.Error("Failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

func handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Renderer returns the renderer new pages and sessions use.
func (s *Server) Renderer() *site.Renderer { return s.renderer.Load() }

// SetRenderer swaps the renderer. Open sessions keep the one they started
// with; reloading the page picks up the new one.
func (s *Server) SetRenderer(r *site.Renderer) {
	s.renderer.Store(r)
	s.log.Info("Renderer reloaded")
}

// Sessions returns the number of open live sessions.
func (s *Server) Sessions() int { return s.live.Sessions() }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("Listening", zap.String("addr", addr), zap.String("url", fmt.Sprintf("http://localhost:%d", s.cfg.Port)))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and disconnects every live
// session.
func (s *Server) Shutdown(ctx context.Context) error {
	s.live.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
