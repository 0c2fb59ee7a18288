package ui

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tock/internal/clock"
	"github.com/five82/tock/internal/prefs"
	"github.com/five82/tock/internal/todo"
)

// Clock is the part of clock.Engine the UI drives.
type Clock interface {
	Snapshot() clock.Snapshot
	Start() bool
	Stop()
	Adjust(unit clock.Unit, delta int) bool
	Set(seconds int) bool
	Reset() bool
	SetMode(m clock.Mode) bool
}

// focus selects which panel receives navigation keys.
type focus int

const (
	focusClock focus = iota
	focusTasks
)

// inputMode tracks what the text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
	inputTime
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Clock     Clock
	Tasks     *todo.List
	Refresh   time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
	Rand      *rand.Rand // nil seeds from the wall clock
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	clock     Clock
	tasks     *todo.List
	prefs     prefs.Prefs
	prefsPath string
	refresh   time.Duration
	logger    *slog.Logger
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	focus    focus
	unit     clock.Unit
	cursor   int
	notice   string

	// Data state
	snapshot   clock.Snapshot
	items      []todo.Item
	selectedID string

	// Text input
	input     textinput.Model
	inputMode inputMode
	editID    string
	inputErr  string

	// Sparkles
	sparkles  sparkleField
	animating bool
	rng       *rand.Rand
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = 200 * time.Millisecond
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x746f636b))
	}

	ti := textinput.New()
	ti.CharLimit = 200

	m := Model{
		ctx:       ctx,
		clock:     opts.Clock,
		tasks:     opts.Tasks,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		refresh:   refresh,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		unit:      clock.Minutes,
		input:     ti,
		rng:       rng,
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.isQuit(msg) {
			return m, tea.Quit
		}
		next, cmd := m.handleKey(msg)
		next.sparkleAt(float64(next.width)/2, float64(sparkleRows)/2)
		anim := next.animate()
		return next, tea.Batch(cmd, anim)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row := float64(msg.Y - m.bandTop())
		if row < 0 || row >= sparkleRows {
			row = float64(sparkleRows) / 2
		}
		m.sparkleAt(float64(msg.X), row)
		anim := m.animate()
		return m, anim

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, m.width-24)
		m.ready = true
		return m, nil

	case tickMsg:
		m.sync()
		anim := m.animate()
		return m, tea.Batch(tickCmd(m.refresh), anim)

	case frameMsg:
		m.sparkles.step()
		if m.sparkles.active() {
			return m, frameCmd()
		}
		m.animating = false
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

func (m Model) isQuit(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyCtrlC {
		return true
	}
	return m.inputMode == inputNone && !m.showHelp && key.Matches(msg, m.keys.Quit)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focus == focusClock {
			m.focus = focusTasks
		} else {
			m.focus = focusClock
		}
		return m, nil

	case key.Matches(msg, m.keys.Sparkle):
		return m, nil

	case key.Matches(msg, m.keys.StartStop):
		m.toggleRunning()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if !m.clock.Reset() {
			m.notice = "Stop the clock before resetting"
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		m.toggleMode()
		return m, nil

	case key.Matches(msg, m.keys.SetTime):
		if m.snapshot.Running {
			m.notice = "Stop the clock before setting a time"
			return m, nil
		}
		return m.openInput(inputTime, "")

	case key.Matches(msg, m.keys.Add):
		return m.openInput(inputAdd, "")
	}

	if m.focus == focusClock {
		return m.handleClockKey(msg)
	}
	return m.handleTaskKey(msg)
}

// sync pulls fresh state from the engine and the task list.
func (m *Model) sync() {
	prev := m.snapshot
	if m.clock != nil {
		m.snapshot = m.clock.Snapshot()
	}
	if m.tasks != nil {
		m.items = m.tasks.Items()
		m.selectedID, _ = m.tasks.Selected()
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if prev.Running && m.snapshot.Finished {
		m.notice = "Time's up!"
		m.sparkleAt(float64(m.width)/2, float64(sparkleRows)/2)
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.prefs.Theme = m.theme.Name
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
		m.notice = "Could not save theme"
	}
}

func (m *Model) sparkleAt(x, y float64) {
	if m.width <= 0 {
		return
	}
	m.sparkles.burst(m.rng, x, y)
}

// animate starts the frame loop if particles are alive and no loop is running.
func (m *Model) animate() tea.Cmd {
	if m.animating || !m.sparkles.active() {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// bandTop is the screen row where the sparkle band starts.
func (m Model) bandTop() int {
	return max(0, m.height-1-sparkleRows)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderClockPanel())
	b.WriteString("\n")
	b.WriteString(m.renderTasksPanel())
	if line := m.renderInputLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	top := b.String()
	if h := m.bandTop(); h > 0 {
		top = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(top)
	}

	return top + "\n" +
		m.sparkles.render(m.width, sparkleRows, m.theme.Sparkles) + "\n" +
		m.renderCommandBar()
}

// Messages

type tickMsg time.Time

type frameMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(sparkleFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
