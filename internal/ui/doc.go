// Package ui provides the Bubble Tea terminal interface for tock.
//
// # Layout
//
//	┌ header: logo, RUNNING/STOPPED/FINISHED badge, mode, credited task ┐
//	 Clock
//	 ╭──────────────────────╮
//	 │ ▲    ▲    ▲          │
//	 │ 01 : 25 : 00         │
//	 │ ▼    ▼    ▼          │
//	 ╰──────────────────────╯
//	 Tasks
//	 ╭──────────────────────╮
//	 │ ● [ ] write report   │
//	 │   [x] call back      │
//	 ╰──────────────────────╯
//	 sparkle band
//	└ command bar: key hints or the latest notice ┘
//
// # Package Structure
//
//   - app.go: Model, Update loop, refresh tick and Run
//   - clock_view.go: unit cursor, adjust keys and the clock panel
//   - tasks.go: task navigation, select/toggle/delete and the task panel
//   - input.go: text input for adding and editing tasks and typing a time
//   - sparkles.go: particles spawned by clicks and key presses
//   - header.go, help.go: status bar, command bar and help overlay
//   - theme.go, keys.go: lipgloss themes and bubbles key bindings
//
// # Refresh
//
// The engine ticks on its own goroutine. The model never waits on it: a
// tea.Tick loop reads clock.Engine.Snapshot and todo.List.Items at the configured
// refresh interval, and every key press syncs immediately after acting.
//
// # Adjusting
//
// The ▲/▼ adjusters and the :, r and m keys only act while the clock is
// stopped. While it runs the arrows are drawn faint and the command bar
// explains why nothing happened.
package ui
