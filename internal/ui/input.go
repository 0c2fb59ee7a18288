package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tock/internal/clock"
)

// openInput focuses the text input for mode, pre-filled with value.
func (m Model) openInput(mode inputMode, value string) (Model, tea.Cmd) {
	m.inputMode = mode
	m.inputErr = ""
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()

	switch mode {
	case inputAdd:
		m.input.Prompt = "New task: "
		m.input.Placeholder = "what are you working on?"
	case inputEdit:
		m.input.Prompt = "Edit task: "
		m.input.Placeholder = ""
	case inputTime:
		m.input.Prompt = "Set time: "
		m.input.Placeholder = "HH:MM:SS, MM:SS or SS"
	}

	return m, m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputMode = inputNone
	m.editID = ""
	m.inputErr = ""
	m.input.Blur()
	m.input.Reset()
}

// handleInputKey routes keys to the text input while it is open.
func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.commitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inputErr = ""
	return m, cmd
}

// commitInput applies the typed value. Invalid times keep the input open.
func (m *Model) commitInput() {
	value := m.input.Value()

	switch m.inputMode {
	case inputAdd:
		if _, ok := m.tasks.Add(value); ok {
			m.cursor = 0
		}

	case inputEdit:
		if strings.TrimSpace(value) != "" && !m.tasks.Edit(m.editID, value) {
			m.notice = "Task can no longer be edited"
		}

	case inputTime:
		seconds := 0
		if strings.TrimSpace(value) != "" {
			n, err := clock.Parse(value)
			if err != nil {
				m.inputErr = err.Error()
				return
			}
			seconds = n
		}
		if !m.clock.Set(seconds) {
			m.notice = "Stop the clock before setting a time"
		}
	}

	m.closeInput()
	m.sync()
}

// renderInputLine renders the open text input and any validation error.
func (m Model) renderInputLine() string {
	if m.inputMode == inputNone {
		return ""
	}
	styles := m.theme.Styles()
	line := " " + m.input.View()
	if m.inputErr != "" {
		line += "\n " + styles.DangerText.Render(m.inputErr)
	}
	return line
}
