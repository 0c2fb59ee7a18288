package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, clock state, mode and credited task.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := []string{
		styles.Logo.Background(bg).Render("tock"),
		styles.StateStyle(m.clockState()).Render(strings.ToUpper(m.clockState())),
		styles.MutedText.Background(bg).Render(m.snapshot.Mode.String()),
	}

	if item, ok := m.selectedItem(); ok {
		label := truncate(item.Text, max(10, m.width/3))
		parts = append(parts,
			styles.FaintText.Background(bg).Render("crediting")+
				lipgloss.NewStyle().Background(bg).Render(" ")+
				styles.AccentText.Background(bg).Render(label))
	}

	if m.width >= 60 {
		parts = append(parts, styles.FaintText.Background(bg).Render(m.theme.Name))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints, or the latest notice when there is one.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)

	if m.notice != "" {
		return styles.Footer.Width(m.width).Render(
			styles.WarningText.Background(bg).Bold(true).Render(m.notice))
	}

	var hints []commandHint
	switch {
	case m.inputMode != inputNone:
		hints = []commandHint{{"enter", "Confirm"}, {"esc", "Cancel"}}
	case m.focus == focusTasks:
		hints = []commandHint{
			{"a", "Add"}, {"e", "Edit"}, {"x", "Done"}, {"d", "Delete"},
			{"enter", "Credit"}, {"tab", "Clock"}, {"?", "Help"}, {"q", "Quit"},
		}
	default:
		hints = []commandHint{
			{"space", "Start/stop"}, {"←/→", "Unit"}, {"↑/↓", "Adjust"},
			{":", "Set"}, {"r", "Reset"}, {"m", "Mode"}, {"tab", "Tasks"},
			{"?", "Help"}, {"q", "Quit"},
		}
	}

	keyStyle := styles.WarningText.Background(bg)
	descStyle := styles.MutedText.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.key)+space+descStyle.Render(h.desc))
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(
		strings.Join(parts, lipgloss.NewStyle().Background(bg).Render("  ")))
}

type commandHint struct {
	key  string
	desc string
}
