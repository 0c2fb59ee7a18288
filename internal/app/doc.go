// Package app is the composition root for tock.
//
// # Overview
//
// Run loads configuration and preferences, opens the log file and the SQLite
// store, restores the last clock quantity, and wires the clock engine to the
// to-do list (for time credit), the finish chime and the terminal UI.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/tock/config.toml
//	       ├─────> prefs.Load()         Theme, mute, default duration, mode
//	       ├─────> logging.OpenFile()   slog to the log file
//	       ├─────> kv.Open()            SQLite store in the data dir
//	       ├─────> restoreClock()       clock.remaining / clock.mode
//	       ├─────> clock.New()          Engine with todo.List attribution
//	       ├─────> StartSaver()         Background persistence
//	       └─────> ui.Run()             Bubble Tea program (blocks)
//
//	Saver Loop:
//	┌─────────────────────────────────────────┐
//	│ StartSaver() goroutine                  │
//	│  ├─> engine.Snapshot()                  │
//	│  ├─> store.SetInt(clock.remaining)      │
//	│  └─> store.Set(clock.mode)              │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but unreadable or invalid
//   - Log file, data directory or database cannot be opened
//
// Recoverable errors (logged, tock keeps running):
//   - Failed reads of the stored clock (the default duration is used)
//   - Failed writes; the saver backs off up to 30 seconds between attempts
//   - Audio device unavailable (the chime goes silent)
//
// On exit the engine is closed first so the final save sees a stable quantity.
package app
