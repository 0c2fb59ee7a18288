package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the runtime settings tock reads at startup.
type Config struct {
	DataDir   string
	LogFile   string
	Refresh   time.Duration // UI redraw cadence
	SaveEvery time.Duration // persistence flush cadence
}

const (
	defaultConfigPath = "~/.config/tock/config.toml"
	defaultDataDir    = "~/.local/share/tock"
	defaultRefresh    = 200 * time.Millisecond
	defaultSaveEvery  = 5 * time.Second

	minRefresh = 50 * time.Millisecond
	maxRefresh = time.Second
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Refresh: defaultRefresh, SaveEvery: defaultSaveEvery}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			cfg.LogFile = filepath.Join(cfg.DataDir, "tock.log")
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir   string `toml:"data_dir"`
		LogFile   string `toml:"log_file"`
		RefreshMS int    `toml:"refresh_ms"`
		SaveEvery int    `toml:"save_every_s"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DataDir = strings.TrimSpace(raw.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "tock.log")
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	if raw.RefreshMS > 0 {
		cfg.Refresh = clampRefresh(time.Duration(raw.RefreshMS) * time.Millisecond)
	}
	if raw.SaveEvery > 0 {
		cfg.SaveEvery = time.Duration(raw.SaveEvery) * time.Second
	}

	return cfg, nil
}

// DatabasePath returns the SQLite file holding persisted clock state.
func (c Config) DatabasePath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/tock.db")
	}
	return filepath.Join(c.DataDir, "tock.db")
}

func clampRefresh(d time.Duration) time.Duration {
	if d < minRefresh {
		return minRefresh
	}
	if d > maxRefresh {
		return maxRefresh
	}
	return d
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading "~" and makes it absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
