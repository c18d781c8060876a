package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnChange(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the file system watcher")
	}
	path := filepath.Join(t.TempDir(), ".textflux.yml")
	if err := os.WriteFile(path, []byte("site_title: First\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, nil, func(c *Config) { changes <- c })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	// An invalid config is skipped.
	if err := os.WriteFile(path, []byte("theme: sepia\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case c := <-changes:
		t.Fatalf("invalid config delivered: %+v", c)
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("site_title: Second\ntheme: light\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case c := <-changes:
		if c.SiteTitle != "Second" || c.Theme != ThemeLight {
			t.Errorf("reloaded config = %+v", c)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".textflux.yml")
	if err := Watch(context.Background(), path, 0, nil, func(*Config) {}); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
