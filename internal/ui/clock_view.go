package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tock/internal/clock"
)

const unitCellWidth = 4

var clockUnits = []clock.Unit{clock.Hours, clock.Minutes, clock.Seconds}

// handleClockKey processes unit selection and adjustment.
func (m Model) handleClockKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevUnit):
		if m.unit > clock.Hours {
			m.unit--
		}
	case key.Matches(msg, m.keys.NextUnit):
		if m.unit < clock.Seconds {
			m.unit++
		}
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	}
	return m, nil
}

func (m *Model) adjust(delta int) {
	if !m.clock.Adjust(m.unit, delta) && m.clock.Snapshot().Running {
		m.notice = "Stop the clock to adjust it"
	}
	m.sync()
}

func (m *Model) toggleRunning() {
	if m.clock.Snapshot().Running {
		m.clock.Stop()
		m.sync()
		return
	}
	if !m.clock.Start() {
		m.notice = "Nothing to count: set a time first"
		if m.snapshot.Mode == clock.Stopwatch {
			m.notice = "Stopwatch is at its maximum"
		}
	}
	m.sync()
}

func (m *Model) toggleMode() {
	next := clock.Stopwatch
	if m.clock.Snapshot().Mode == clock.Stopwatch {
		next = clock.Countdown
	}
	if !m.clock.SetMode(next) {
		m.notice = "Stop the clock before switching mode"
	}
	m.sync()
}

// clockState names the badge shown for the current snapshot.
func (m Model) clockState() string {
	switch {
	case m.snapshot.Running:
		return stateRunning
	case m.snapshot.Finished:
		return stateFinished
	default:
		return stateStopped
	}
}

// renderClockPanel renders the ▲/▼ adjusters around the HH:MM:SS readout.
func (m Model) renderClockPanel() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	focused := m.focus == focusClock

	cell := lipgloss.NewStyle().Width(unitCellWidth).Align(lipgloss.Center)
	values := []int{snap.Hours(), snap.Minutes(), snap.Seconds()}

	var up, digits, down []string
	for i, u := range clockUnits {
		arrow := styles.MutedText
		digit := styles.Text.Bold(true)
		switch {
		case snap.Running:
			arrow = styles.FaintText
		case focused && u == m.unit:
			arrow = styles.AccentText
			digit = styles.AccentText.Bold(true).Underline(true)
		}
		if snap.Finished {
			digit = styles.DangerText
		}

		up = append(up, arrow.Inherit(cell).Render("▲"))
		digits = append(digits, digit.Inherit(cell).Render(fmt.Sprintf("%02d", values[i])))
		down = append(down, arrow.Inherit(cell).Render("▼"))
	}
	sep := styles.FaintText.Render(":")

	state := m.clockState()
	badge := styles.StateStyle(state).Render(strings.ToUpper(state))
	mode := styles.MutedText.Render(snap.Mode.String())

	body := lipgloss.JoinVertical(lipgloss.Left,
		badge+"  "+mode,
		"",
		strings.Join(up, " "),
		strings.Join(digits, sep),
		strings.Join(down, " "),
	)

	panel := styles.Panel
	if focused {
		panel = styles.FocusedPanel
	}
	title := styles.MutedText.Render("Clock")
	if focused {
		title = styles.AccentText.Bold(true).Render("Clock")
	}
	return lipgloss.JoinVertical(lipgloss.Left, " "+title, panel.Width(m.panelWidth()).Render(body))
}

// panelWidth is the inner width shared by the clock and task panels.
func (m Model) panelWidth() int {
	return max(30, m.width-4)
}
