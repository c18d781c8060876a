package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/progress"
	"github.com/textflux/textflux-site/internal/session"
)

// Generator writes the static site: index.html, its stylesheet and script,
// and any asset files matched by the configured glob patterns.
type Generator struct {
	Renderer  *Renderer
	OutputDir string
	// SourceDir is the root the asset patterns are matched against.
	SourceDir string
	Assets    []string
	// State is the UI state the page is rendered in. Static pages start
	// from session.InitialState with only the theme varying.
	State    session.UIState
	Reporter progress.Reporter
	Logger   *zap.Logger
}

// NewGenerator creates a Generator that renders r into outputDir.
func NewGenerator(r *Renderer, outputDir string) *Generator {
	return &Generator{
		Renderer:  r,
		OutputDir: outputDir,
		SourceDir: ".",
		State:     session.InitialState(),
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
	}
}

type outputFile struct {
	name string
	data []byte
}

// Generate builds the site. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	if g.Renderer == nil {
		return 0, fmt.Errorf("generator has no renderer")
	}
	if g.OutputDir == "" {
		return 0, fmt.Errorf("output dir is required")
	}
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rep := g.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}

	var page bytes.Buffer
	if err := g.Renderer.Page(&page, g.State); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}

	assets, err := g.matchAssets()
	if err != nil {
		return 0, err
	}

	files := []outputFile{
		{"index.html", page.Bytes()},
		{"style.css", []byte(cssContent)},
		{"script.js", []byte(jsContent)},
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	total := len(files) + len(assets)
	rep.Start(total)
	defer rep.Finish()

	written := 0
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written++
		rep.Update(written, f.name)
	}
	for _, rel := range assets {
		if err := g.copyAsset(rel); err != nil {
			return written, fmt.Errorf("copying %s: %w", rel, err)
		}
		written++
		rep.Update(written, rel)
	}

	log.Info("Site built",
		zap.String("output_dir", g.OutputDir),
		zap.Int("files", written),
		zap.Int("assets", len(assets)))
	return written, nil
}

// matchAssets expands the asset patterns relative to SourceDir. Files
// inside the output dir are skipped so a rebuild never copies its own
// output. The result is sorted and free of duplicates.
func (g *Generator) matchAssets() ([]string, error) {
	if len(g.Assets) == 0 {
		return nil, nil
	}
	src := g.sourceDir()
	outRel, err := filepath.Rel(src, g.OutputDir)
	if err != nil || strings.HasPrefix(outRel, "..") {
		outRel = ""
	}
	outRel = filepath.ToSlash(outRel)

	fsys := os.DirFS(src)
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range g.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if outRel != "" && outRel != "." && (m == outRel || strings.HasPrefix(m, outRel+"/")) {
				continue
			}
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (g *Generator) copyAsset(rel string) error {
	data, err := fs.ReadFile(os.DirFS(g.sourceDir()), rel)
	if err != nil {
		return err
	}
	dst := filepath.Join(g.OutputDir, filepath.FromSlash(path.Clean(rel)))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func (g *Generator) sourceDir() string {
	if g.SourceDir == "" {
		return "."
	}
	return g.SourceDir
}
