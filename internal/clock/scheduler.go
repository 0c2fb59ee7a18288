package clock

import (
	"sync"
	"time"
)

// Task is a handle to a periodic callback registered with a Scheduler.
type Task interface {
	// Cancel stops future invocations. Safe to call more than once and from
	// inside the callback itself.
	Cancel()
}

// Scheduler runs a callback on a fixed period until the returned Task is
// cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// TickerScheduler drives callbacks from a time.Ticker on a dedicated goroutine.
// Ticks missed while the process is suspended are dropped by the ticker and
// never replayed.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) Task {
	t := &tickerTask{done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				select {
				case <-t.done:
					return
				default:
				}
				fn()
			}
		}
	}()
	return t
}

type tickerTask struct {
	once sync.Once
	done chan struct{}
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.done) })
}

// ManualScheduler is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously on the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTask struct {
	owner    *ManualScheduler
	interval time.Duration
	elapsed  time.Duration
	fn       func()
	active   bool
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.active = false
}

// Every implements Scheduler.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Second
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{owner: s, interval: interval, fn: fn, active: true}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves time forward by d and fires every due callback once per
// elapsed period. A callback that cancels its own task stops further firing
// within the same call.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	type due struct {
		task  *manualTask
		fires int
	}
	var pending []due
	for _, t := range s.tasks {
		if !t.active {
			continue
		}
		t.elapsed += d
		n := int(t.elapsed / t.interval)
		t.elapsed %= t.interval
		if n > 0 {
			pending = append(pending, due{task: t, fires: n})
		}
	}
	s.mu.Unlock()

	for _, p := range pending {
		for i := 0; i < p.fires; i++ {
			if !s.isActive(p.task) {
				break
			}
			p.task.fn()
		}
	}
}

// Step advances time by n periods of one second.
func (s *ManualScheduler) Step(n int) {
	for i := 0; i < n; i++ {
		s.Advance(time.Second)
	}
}

// Active reports how many tasks have not been cancelled.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if t.active {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) isActive(t *manualTask) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.active
}
