// Package clock implements the countdown/stopwatch engine behind tock.
//
// # State
//
// The engine keeps a single non-negative count of seconds. Hours, minutes and
// seconds are derived from it for display, so carries and borrows between
// units fall out of plain integer arithmetic:
//
//	hours   = remaining / 3600
//	minutes = (remaining % 3600) / 60
//	seconds = remaining % 60
//
// The count never drops below zero and never exceeds MaxSeconds (99:59:59).
//
// # Lifecycle
//
//	         Start()                       tick() reaches 0
//	stopped ─────────> running ────────────────────────────> finished (stopped)
//	   ^                  │
//	   └──── Stop() ──────┘
//
// Start acquires exactly one periodic Task from the Scheduler. Stop, the
// finishing tick and Close all release it. Each Task is tagged with a
// generation number, so a tick that races with Stop is discarded rather than
// applied to the next run.
//
// Adjust, Set, Reset and SetMode are only honoured while the clock is stopped.
// None of the engine's operations return errors; invalid requests report
// false and leave the state untouched.
//
// # Schedulers
//
// TickerScheduler runs callbacks from a time.Ticker goroutine and is what the
// application uses. ManualScheduler only moves when told to, which makes tick
// counting in tests exact:
//
//	sched := clock.NewManualScheduler()
//	eng := clock.New(clock.Options{Initial: 60, Scheduler: sched})
//	eng.Start()
//	sched.Step(60)
//	eng.Snapshot().Finished // true
package clock
