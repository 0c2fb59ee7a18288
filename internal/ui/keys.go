package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Sparkle    key.Binding

	// Clock
	StartStop key.Binding
	Reset     key.Binding
	Mode      key.Binding
	SetTime   key.Binding
	PrevUnit  key.Binding
	NextUnit  key.Binding
	Increase  key.Binding
	Decrease  key.Binding

	// Tasks
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Select key.Binding

	// Input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch clock/tasks"),
		),
		Sparkle: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "Sparkle"),
		),

		// Clock
		StartStop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Start/stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset to zero"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Countdown/stopwatch"),
		),
		SetTime: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Type a time"),
		),
		PrevUnit: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous unit"),
		),
		NextUnit: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next unit"),
		),
		Increase: key.NewBinding(
			key.WithKeys("up", "k", "+", "="),
			key.WithHelp("↑/+", "Increase unit"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/-", "Decrease unit"),
		),

		// Tasks
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete task"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Credit time to task"),
		),

		// Input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Tab, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.PrevUnit, k.NextUnit, k.Increase, k.Decrease, k.SetTime, k.Reset, k.Mode},
		{k.Tab, k.Up, k.Down, k.Add, k.Edit, k.Toggle, k.Delete, k.Select},
		{k.CycleTheme, k.Sparkle, k.Help, k.Quit},
	}
}
