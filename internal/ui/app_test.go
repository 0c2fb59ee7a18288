package ui

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tock/internal/clock"
	"github.com/five82/tock/internal/logging"
	"github.com/five82/tock/internal/prefs"
	"github.com/five82/tock/internal/todo"
)

type harness struct {
	sched     *clock.ManualScheduler
	engine    *clock.Engine
	tasks     *todo.List
	prefsPath string
}

func newHarness(t *testing.T) (*harness, Model) {
	t.Helper()
	h := &harness{
		sched:     clock.NewManualScheduler(),
		tasks:     todo.NewList(),
		prefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	}
	h.engine = clock.New(clock.Options{
		Scheduler:   h.sched,
		Attribution: h.tasks,
		Logger:      logging.Discard().Logger,
	})
	t.Cleanup(h.engine.Close)

	m := New(Options{
		Clock:     h.engine,
		Tasks:     h.tasks,
		Prefs:     prefs.Defaults(),
		PrefsPath: h.prefsPath,
		Logger:    logging.Discard().Logger,
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	return h, m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		model, ok := next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want ui.Model", next)
		}
		m = model
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, tickMsg(time.Now()))
}

func TestAdjustArrowsCarryAcrossUnits(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "up")
	if got := h.engine.Snapshot().Remaining; got != 60 {
		t.Fatalf("after up on minutes Remaining = %d, want 60", got)
	}

	m = press(t, m, "left", "up")
	if got := h.engine.Snapshot().Remaining; got != 3660 {
		t.Fatalf("after up on hours Remaining = %d, want 3660", got)
	}

	m = press(t, m, "right", "right", "down")
	if got := h.engine.Snapshot().Remaining; got != 3659 {
		t.Fatalf("after down on seconds Remaining = %d, want 3659", got)
	}
	if m.snapshot.String() != "01:00:59" {
		t.Fatalf("snapshot = %s, want 01:00:59", m.snapshot.String())
	}
}

func TestDecrementAtZeroIsIgnored(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "down", "-")
	if got := h.engine.Snapshot().Remaining; got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
	if m.notice != "" {
		t.Fatalf("notice = %q, want none for a stopped clock", m.notice)
	}
}

func TestCountdownRunsToFinish(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, ":", "2", "enter")
	if got := h.engine.Snapshot().Remaining; got != 2 {
		t.Fatalf("Remaining = %d, want 2", got)
	}

	m = press(t, m, " ")
	if !m.snapshot.Running {
		t.Fatalf("clock not running after space")
	}
	if !strings.Contains(m.View(), "RUNNING") {
		t.Fatalf("View missing RUNNING badge")
	}

	h.sched.Step(1)
	m = tick(t, m)
	if m.snapshot.Remaining != 1 {
		t.Fatalf("Remaining = %d, want 1", m.snapshot.Remaining)
	}

	h.sched.Step(1)
	m = tick(t, m)
	if m.snapshot.Running || !m.snapshot.Finished {
		t.Fatalf("snapshot = %+v, want finished and stopped", m.snapshot)
	}
	if m.notice != "Time's up!" {
		t.Fatalf("notice = %q, want Time's up!", m.notice)
	}
	if h.sched.Active() != 0 {
		t.Fatalf("scheduler still has %d active tasks", h.sched.Active())
	}
}

func TestSpaceStopsRunningClock(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "up", " ")
	h.sched.Step(3)
	m = press(t, m, " ")
	if m.snapshot.Running {
		t.Fatalf("clock still running after second space")
	}
	if m.snapshot.Remaining != 57 {
		t.Fatalf("Remaining = %d, want 57", m.snapshot.Remaining)
	}

	h.sched.Step(5)
	if got := h.engine.Snapshot().Remaining; got != 57 {
		t.Fatalf("stopped clock moved to %d", got)
	}
}

func TestStartAtZeroShowsNotice(t *testing.T) {
	_, m := newHarness(t)

	m = press(t, m, " ")
	if m.snapshot.Running {
		t.Fatalf("countdown at zero started")
	}
	if m.notice == "" {
		t.Fatalf("expected a notice when starting at zero")
	}
}

func TestRunningClockRejectsEdits(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "up", " ")
	for _, k := range []string{"up", "r", "m"} {
		m = press(t, m, k)
		if !strings.Contains(m.notice, "Stop the clock") {
			t.Fatalf("key %q notice = %q, want stop hint", k, m.notice)
		}
	}
	snap := h.engine.Snapshot()
	if snap.Remaining != 60 || snap.Mode != clock.Countdown {
		t.Fatalf("running clock changed: %+v", snap)
	}

	m = press(t, m, ":")
	if m.inputMode != inputNone {
		t.Fatalf("time input opened while running")
	}
}

func TestTimeInputValidation(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "up", ":", "1:2:3:4", "enter")
	if m.inputMode != inputTime {
		t.Fatalf("invalid time closed the input")
	}
	if m.inputErr == "" {
		t.Fatalf("invalid time shows no error")
	}
	if got := h.engine.Snapshot().Remaining; got != 60 {
		t.Fatalf("invalid time changed clock to %d", got)
	}

	m = press(t, m, "esc")
	if m.inputMode != inputNone {
		t.Fatalf("esc did not close the input")
	}

	m = press(t, m, ":", "enter")
	if got := h.engine.Snapshot().Remaining; got != 0 {
		t.Fatalf("empty time set clock to %d, want 0", got)
	}

	press(t, m, ":", "1:30:00", "enter")
	if got := h.engine.Snapshot().Remaining; got != 5400 {
		t.Fatalf("Remaining = %d, want 5400", got)
	}
}

func TestModeToggleAndStopwatch(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "m")
	if m.snapshot.Mode != clock.Stopwatch {
		t.Fatalf("mode = %v, want stopwatch", m.snapshot.Mode)
	}

	m = press(t, m, " ")
	h.sched.Step(3)
	m = tick(t, m)
	if m.snapshot.Remaining != 3 {
		t.Fatalf("stopwatch Remaining = %d, want 3", m.snapshot.Remaining)
	}
}

func TestTaskLifecycle(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "a", "write report", "enter")
	m = press(t, m, "a", "second", "enter")
	if h.tasks.Len() != 2 {
		t.Fatalf("tasks = %d, want 2", h.tasks.Len())
	}
	if m.items[0].Text != "second" {
		t.Fatalf("first item = %q, want newest task first", m.items[0].Text)
	}

	m = press(t, m, "tab", "enter")
	if id, ok := h.tasks.Selected(); !ok || id != m.items[0].ID {
		t.Fatalf("Selected = %q,%v, want %q", id, ok, m.items[0].ID)
	}

	m = press(t, m, "j", "x")
	if !m.items[1].Done {
		t.Fatalf("x did not mark task done")
	}
	m = press(t, m, "e")
	if m.inputMode != inputNone {
		t.Fatalf("edit opened for a completed task")
	}
	if m.notice == "" {
		t.Fatalf("expected a notice for editing a completed task")
	}

	m = press(t, m, "k", "e", " draft", "enter")
	if m.items[0].Text != "second draft" {
		t.Fatalf("edited text = %q, want %q", m.items[0].Text, "second draft")
	}

	m = press(t, m, "d")
	if h.tasks.Len() != 1 {
		t.Fatalf("tasks = %d after delete, want 1", h.tasks.Len())
	}
	if _, ok := h.tasks.Selected(); ok {
		t.Fatalf("selection survived deleting the selected task")
	}
	if m.selectedID != "" {
		t.Fatalf("model selectedID = %q, want empty", m.selectedID)
	}
}

func TestBlankTaskIsIgnored(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "a", "   ", "enter")
	if h.tasks.Len() != 0 {
		t.Fatalf("blank task was added")
	}
	if m.inputMode != inputNone {
		t.Fatalf("input still open")
	}
}

func TestSelectedTaskIsCredited(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "a", "focus", "enter", "tab", "enter", "tab", ":", "10", "enter", " ")
	h.sched.Step(4)
	m = tick(t, m)

	if got := m.items[0].Spent; got != 4*time.Second {
		t.Fatalf("Spent = %v, want 4s", got)
	}
	if !strings.Contains(m.renderHeader(), "crediting") {
		t.Fatalf("header does not show the credited task")
	}
}

func TestTypingQDoesNotQuit(t *testing.T) {
	_, m := newHarness(t)

	m = press(t, m, "a", "q")
	if m.inputMode != inputAdd || m.input.Value() != "q" {
		t.Fatalf("input = %q (mode %v), want q typed into add", m.input.Value(), m.inputMode)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestQuitKey(t *testing.T) {
	_, m := newHarness(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestHelpOverlay(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}

	m = press(t, m, "up")
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
	if got := h.engine.Snapshot().Remaining; got != 0 {
		t.Fatalf("closing help also adjusted the clock to %d", got)
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	h, m := newHarness(t)

	m = press(t, m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}

	saved, err := prefs.Load(h.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
	if saved.Mode != "countdown" {
		t.Fatalf("saved mode = %q, want other prefs preserved", saved.Mode)
	}
}

func TestMouseClickSpawnsSparkles(t *testing.T) {
	_, m := newHarness(t)

	before := len(m.sparkles.particles)
	next, cmd := m.Update(tea.MouseMsg{
		X:      10,
		Y:      m.bandTop() + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(Model)

	if got := len(m.sparkles.particles) - before; got != sparklesPerBurst {
		t.Fatalf("click spawned %d particles, want %d", got, sparklesPerBurst)
	}
	if cmd == nil || !m.animating {
		t.Fatalf("click did not start the frame loop")
	}
	last := m.sparkles.particles[len(m.sparkles.particles)-1]
	if last.x0 != 10 || last.y0 != 1 {
		t.Fatalf("particle origin = (%v,%v), want (10,1)", last.x0, last.y0)
	}
}

func TestRightClickIsIgnored(t *testing.T) {
	_, m := newHarness(t)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.sparkles.active() {
		t.Fatalf("right click spawned sparkles")
	}
}

func TestSparkleFramesDrainParticles(t *testing.T) {
	_, m := newHarness(t)

	m = press(t, m, "*")
	if !m.sparkles.active() || !m.animating {
		t.Fatalf("key press did not start sparkles")
	}
	for i := 0; i < sparkleFrames; i++ {
		m = update(t, m, frameMsg(time.Now()))
	}
	if m.sparkles.active() {
		t.Fatalf("%d particles left after %d frames", len(m.sparkles.particles), sparkleFrames)
	}
	if m.animating {
		t.Fatalf("frame loop still marked running")
	}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Options{Clock: clock.New(clock.Options{Scheduler: clock.NewManualScheduler()}), Tasks: todo.NewList()})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}
