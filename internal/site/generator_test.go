package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/textflux/textflux-site/internal/progress"
	"github.com/textflux/textflux-site/internal/session"
)

type countingReporter struct {
	total   int
	updates []string
	done    bool
}

func (r *countingReporter) Start(total int)          { r.total = total }
func (r *countingReporter) Update(_ int, msg string) { r.updates = append(r.updates, msg) }
func (r *countingReporter) Finish()                  { r.done = true }

var _ progress.Reporter = (*countingReporter)(nil)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(src, "dist")

	g := NewGenerator(newTestRenderer(t, Options{}), out)
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 {
		t.Errorf("files written = %d, want 3", n)
	}

	for _, name := range []string{"index.html", "style.css", "script.js"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `data-live="false"`) {
		t.Error("static build should not be live")
	}
	if !strings.Contains(string(index), `class="dark"`) {
		t.Error("static build should start dark")
	}
}

func TestGenerateLightTheme(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(newTestRenderer(t, Options{}), out)
	g.State = session.UIState{ThemeDark: false}
	if _, err := g.Generate(); err != nil {
		t.Fatal(err)
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `class="light"`) {
		t.Error("expected light page")
	}
}

func TestGenerateCopiesAssets(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(src, "dist")
	writeFile(t, filepath.Join(src, "assets", "logo.svg"), "<svg/>")
	writeFile(t, filepath.Join(src, "assets", "icons", "favicon.ico"), "ico")
	writeFile(t, filepath.Join(src, "assets", "notes.txt"), "skip me")
	// Stale output from an earlier build must not be copied into itself.
	writeFile(t, filepath.Join(out, "assets", "old.svg"), "<svg/>")

	rep := &countingReporter{}
	g := NewGenerator(newTestRenderer(t, Options{}), out)
	g.SourceDir = src
	g.Assets = []string{"**/*.{svg,ico}", "assets/logo.svg"}
	g.Reporter = rep

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 5 {
		t.Errorf("files written = %d, want 5", n)
	}
	if rep.total != 5 || len(rep.updates) != 5 || !rep.done {
		t.Errorf("reporter = %+v", rep)
	}

	for _, rel := range []string{"assets/logo.svg", "assets/icons/favicon.ico"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("asset %s not copied: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "notes.txt")); err == nil {
		t.Error("unmatched asset should not be copied")
	}
	if _, err := os.Stat(filepath.Join(out, "dist")); err == nil {
		t.Error("output dir should not be copied into itself")
	}
}

func TestGenerateInvalidPattern(t *testing.T) {
	g := NewGenerator(newTestRenderer(t, Options{}), t.TempDir())
	g.Assets = []string{"assets/[*.svg"}
	if _, err := g.Generate(); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestGenerateRequiresOutputDir(t *testing.T) {
	g := NewGenerator(newTestRenderer(t, Options{}), "")
	if _, err := g.Generate(); err == nil {
		t.Fatal("expected error for empty output dir")
	}
}
