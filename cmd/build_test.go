package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildCommand(t *testing.T) {
	t.Setenv("CI", "true")
	dir := t.TempDir()
	out := filepath.Join(dir, "public")

	rootCmd.SetArgs([]string{
		"build",
		"--config", filepath.Join(dir, "missing.yml"),
		"--output", out,
		"--theme", "light",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	if !strings.Contains(string(index), `class="light"`) {
		t.Error("--theme light should build a light page")
	}
	for _, name := range []string{"style.css", "script.js"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestBuildCommandRejectsBadTheme(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{
		"build",
		"--config", filepath.Join(dir, "missing.yml"),
		"--output", filepath.Join(dir, "public"),
		"--theme", "sepia",
	})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
