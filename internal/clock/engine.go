package clock

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// MaxSeconds is the largest quantity the engine holds (99:59:59).
const MaxSeconds = 99*3600 + 59*60 + 59

// TickInterval is the period between ticks while running.
const TickInterval = time.Second

// Mode selects whether ticks count down or up.
type Mode int

const (
	Countdown Mode = iota
	Stopwatch
)

func (m Mode) String() string {
	switch m {
	case Stopwatch:
		return "stopwatch"
	default:
		return "countdown"
	}
}

// ParseMode maps a config or prefs string to a Mode, defaulting to Countdown.
func ParseMode(s string) Mode {
	if s == "stopwatch" {
		return Stopwatch
	}
	return Countdown
}

// Unit is one of the derived display units.
type Unit int

const (
	Hours Unit = iota
	Minutes
	Seconds
)

func (u Unit) String() string {
	switch u {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

func (u Unit) size() int {
	switch u {
	case Hours:
		return 3600
	case Minutes:
		return 60
	case Seconds:
		return 1
	default:
		return 0
	}
}

// Attribution receives one second of credit per counting tick for whatever
// is selected at that moment.
type Attribution interface {
	Selected() (id string, ok bool)
	Credit(id string, d time.Duration)
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Remaining int
	Running   bool
	Finished  bool
	Mode      Mode
}

func (s Snapshot) Hours() int   { return s.Remaining / 3600 }
func (s Snapshot) Minutes() int { return (s.Remaining % 3600) / 60 }
func (s Snapshot) Seconds() int { return s.Remaining % 60 }

// String renders the quantity as HH:MM:SS.
func (s Snapshot) String() string {
	return Format(s.Remaining)
}

// Options configure an Engine.
type Options struct {
	Initial     int
	Mode        Mode
	Scheduler   Scheduler // nil uses TickerScheduler
	Attribution Attribution
	OnFinish    func(Snapshot)
	Logger      *slog.Logger
}

// Engine owns the clock state and advances it once per second while running.
// Adjustments are only accepted while the clock is stopped.
type Engine struct {
	mu        sync.Mutex
	remaining int
	running   bool
	finished  bool
	closed    bool
	mode      Mode

	sched Scheduler
	task  Task
	gen   uint64

	attribution Attribution
	onFinish    func(Snapshot)
	logger      *slog.Logger
}

// New creates a stopped engine.
func New(opts Options) *Engine {
	sched := opts.Scheduler
	if sched == nil {
		sched = TickerScheduler{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		remaining:   clamp(opts.Initial),
		mode:        opts.Mode,
		sched:       sched,
		attribution: opts.Attribution,
		onFinish:    opts.OnFinish,
		logger:      logger,
	}
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Remaining: e.remaining,
		Running:   e.running,
		Finished:  e.finished,
		Mode:      e.mode,
	}
}

// Start begins ticking. It returns true when the clock is running afterwards.
// A countdown at zero (or a stopwatch at MaxSeconds) finishes immediately
// instead of scheduling a tick.
func (e *Engine) Start() bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	if e.running {
		e.mu.Unlock()
		return true
	}
	if e.exhaustedLocked() {
		e.finished = true
		snap := e.snapshotLocked()
		e.mu.Unlock()
		e.logger.Debug("start refused, nothing left", "mode", snap.Mode.String())
		e.notifyFinish(snap)
		return false
	}

	e.running = true
	e.finished = false
	e.gen++
	gen := e.gen
	e.task = e.sched.Every(TickInterval, func() { e.tick(gen) })
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("clock started", "remaining", snap.Remaining, "mode", snap.Mode.String())
	return true
}

// Stop halts ticking and releases the scheduled task. Idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	wasRunning := e.running
	e.stopLocked()
	remaining := e.remaining
	e.mu.Unlock()

	if wasRunning {
		e.logger.Debug("clock stopped", "remaining", remaining)
	}
}

// Close stops the clock for good; later Start calls are refused.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.closed = true
}

func (e *Engine) stopLocked() {
	e.running = false
	if e.task != nil {
		e.task.Cancel()
		e.task = nil
	}
}

func (e *Engine) exhaustedLocked() bool {
	if e.mode == Stopwatch {
		return e.remaining >= MaxSeconds
	}
	return e.remaining <= 0
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if !e.running || gen != e.gen {
		e.mu.Unlock()
		return
	}

	counted := false
	if !e.exhaustedLocked() {
		if e.mode == Stopwatch {
			e.remaining++
		} else {
			e.remaining--
		}
		counted = true
	}
	done := e.exhaustedLocked()
	if done {
		e.stopLocked()
		e.finished = true
	}
	snap := e.snapshotLocked()
	attribution := e.attribution
	e.mu.Unlock()

	if counted && attribution != nil {
		if id, ok := attribution.Selected(); ok {
			attribution.Credit(id, TickInterval)
		}
	}
	if done {
		e.logger.Info("clock finished", "mode", snap.Mode.String())
		e.notifyFinish(snap)
	}
}

func (e *Engine) notifyFinish(snap Snapshot) {
	if e.onFinish != nil {
		e.onFinish(snap)
	}
}

// Adjust moves one unit by delta (+1 or -1). Carries and borrows cascade
// through the other units. It reports whether anything changed; running
// clocks, results below zero or above MaxSeconds are rejected.
func (e *Engine) Adjust(unit Unit, delta int) bool {
	size := unit.size()
	if size == 0 || (delta != 1 && delta != -1) {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return false
	}
	next := e.remaining + delta*size
	if next < 0 || next > MaxSeconds {
		return false
	}
	e.remaining = next
	e.finished = false
	return true
}

// Set replaces the quantity while stopped, clamping into [0, MaxSeconds].
func (e *Engine) Set(seconds int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return false
	}
	e.remaining = clamp(seconds)
	e.finished = false
	return true
}

// Reset zeroes the quantity while stopped.
func (e *Engine) Reset() bool {
	return e.Set(0)
}

// SetMode switches between countdown and stopwatch while stopped.
func (e *Engine) SetMode(m Mode) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return false
	}
	e.mode = m
	e.finished = false
	return true
}

func clamp(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > MaxSeconds {
		return MaxSeconds
	}
	return seconds
}
