package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Refresh != defaultRefresh {
		t.Fatalf("Refresh = %v, want %v", cfg.Refresh, defaultRefresh)
	}
	if cfg.SaveEvery != defaultSaveEvery {
		t.Fatalf("SaveEvery = %v, want %v", cfg.SaveEvery, defaultSaveEvery)
	}

	wantDataDir, err := ExpandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("ExpandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.LogFile != filepath.Join(wantDataDir, "tock.log") {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, filepath.Join(wantDataDir, "tock.log"))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_dir = "  ~/.tock  "
refresh_ms = 100
save_every_s = 10
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.DataDir, home) {
		t.Fatalf("DataDir = %q, want it under HOME %q", cfg.DataDir, home)
	}
	if cfg.LogFile != filepath.Join(cfg.DataDir, "tock.log") {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, filepath.Join(cfg.DataDir, "tock.log"))
	}
	if cfg.Refresh != 100*time.Millisecond {
		t.Fatalf("Refresh = %v, want 100ms", cfg.Refresh)
	}
	if cfg.SaveEvery != 10*time.Second {
		t.Fatalf("SaveEvery = %v, want 10s", cfg.SaveEvery)
	}
}

func TestLoad_ExplicitLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_file = "~/logs/tock.log"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "tock.log") {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, filepath.Join(home, "logs", "tock.log"))
	}
}

func TestLoad_RefreshIsClamped(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		ms   int
		want time.Duration
	}{
		{1, minRefresh},
		{5000, maxRefresh},
		{250, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "config.toml")
		body := []byte(fmt.Sprintf("refresh_ms = %d\n", tt.ms))
		if err := os.WriteFile(path, body, 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Refresh != tt.want {
			t.Fatalf("refresh_ms=%d: Refresh = %v, want %v", tt.ms, cfg.Refresh, tt.want)
		}
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_dir = "   "
log_file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantDataDir, err := ExpandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("ExpandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.Refresh != defaultRefresh {
		t.Fatalf("Refresh = %v, want %v", cfg.Refresh, defaultRefresh)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`data_dir = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}

func TestDatabasePath_DefaultsWhenDataDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.DatabasePath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("DatabasePath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/tock.db")) {
		t.Fatalf("DatabasePath = %q, want it to end with /tock.db", got)
	}
}
