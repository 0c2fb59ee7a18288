package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tock/internal/clock"
	"github.com/five82/tock/internal/todo"
)

// handleTaskKey processes keyboard input for the task panel.
func (m Model) handleTaskKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	item, ok := m.cursorItem()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		if !ok {
			break
		}
		if item.Done {
			m.notice = "Completed tasks cannot be edited"
			break
		}
		m.editID = item.ID
		return m.openInput(inputEdit, item.Text)
	case key.Matches(msg, m.keys.Toggle):
		if ok {
			m.tasks.Toggle(item.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if ok {
			m.tasks.Remove(item.ID)
		}
	case key.Matches(msg, m.keys.Select):
		if !ok {
			break
		}
		if m.selectedID == item.ID {
			m.tasks.ClearSelection()
		} else {
			m.tasks.Select(item.ID)
		}
	}

	m.sync()
	return m, nil
}

func (m Model) cursorItem() (todo.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return todo.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) selectedItem() (todo.Item, bool) {
	if m.selectedID == "" {
		return todo.Item{}, false
	}
	for _, it := range m.items {
		if it.ID == m.selectedID {
			return it, true
		}
	}
	return todo.Item{}, false
}

// taskRows is how many task lines fit in the panel.
func (m Model) taskRows() int {
	// header, clock panel, panel titles/borders, sparkle band and footer
	const reserved = 20
	return max(3, m.height-reserved)
}

// renderTasksPanel renders the task list with checkbox, text and credited time.
func (m Model) renderTasksPanel() string {
	styles := m.theme.Styles()
	focused := m.focus == focusTasks
	width := m.panelWidth() - 2

	var lines []string
	if len(m.items) == 0 {
		lines = append(lines, styles.FaintText.Render("No tasks yet. Press a to add one."))
	} else {
		rows := m.taskRows()
		start := 0
		if m.cursor >= rows {
			start = m.cursor - rows + 1
		}
		end := min(len(m.items), start+rows)
		for i := start; i < end; i++ {
			lines = append(lines, m.renderTaskLine(m.items[i], focused && i == m.cursor, width))
		}
	}

	panel := styles.Panel
	title := styles.MutedText.Render("Tasks")
	if focused {
		panel = styles.FocusedPanel
		title = styles.AccentText.Bold(true).Render("Tasks")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		" "+title,
		panel.Width(m.panelWidth()).Render(strings.Join(lines, "\n")),
	)
}

func (m Model) renderTaskLine(item todo.Item, cursor bool, width int) string {
	styles := m.theme.Styles()

	marker := "  "
	if item.ID == m.selectedID {
		marker = "● "
	}
	box := "[ ] "
	text := styles.Text
	if item.Done {
		box = "[x] "
		text = styles.FaintText.Strikethrough(true)
	}
	spent := clock.Format(int(item.Spent / time.Second))

	label := truncate(item.Text, max(1, width-len(marker)-len(box)-len(spent)-1))
	gap := max(1, width-lipgloss.Width(marker+box+label)-len(spent))

	if cursor {
		line := marker + box + label + strings.Repeat(" ", gap) + spent
		return styles.Selected.Width(width).Render(line)
	}
	return styles.AccentText.Render(marker) +
		styles.MutedText.Render(box) +
		text.Render(label) +
		strings.Repeat(" ", gap) +
		styles.FaintText.Render(spent)
}

// truncate shortens s to at most n display cells, ending with an ellipsis.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
