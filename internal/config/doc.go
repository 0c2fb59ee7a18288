// Package config loads tock's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tock/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/tock/config.toml
//   - Data directory: ~/.local/share/tock
//   - Database: <data_dir>/tock.db
//   - Log file: <data_dir>/tock.log
//   - UI refresh: 200ms (clamped to 50ms..1s)
//   - Persistence flush: every 5s
//
// # File Format
//
//	data_dir = "~/.local/share/tock"
//	log_file = "~/.local/share/tock/tock.log"
//	refresh_ms = 200
//	save_every_s = 5
//
// Leading/trailing whitespace is trimmed and a leading "~" is expanded to the
// user's home directory. All returned paths are absolute.
//
// # Error Handling
//
// A missing file is not an error. An unreadable file or invalid TOML is
// returned as an error and app.Run treats it as fatal.
//
// User-facing preferences (theme, sound, default duration) live separately in
// the prefs package because the UI writes them back at runtime.
package config
