package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/tock/internal/clock"
)

const (
	defaultSaveInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
	finalSaveTimeout    = 2 * time.Second

	keyRemaining = "clock.remaining"
	keyMode      = "clock.mode"
)

type snapshotter interface {
	Snapshot() clock.Snapshot
}

type intStore interface {
	Set(ctx context.Context, key, value string) error
	SetInt(ctx context.Context, key string, n int) error
}

// StartSaver launches a background goroutine that persists the clock at a
// fixed cadence whenever it changed. Failed writes back off up to maxBackoff.
// A last write happens when ctx is cancelled; the returned channel closes
// once it is done.
func StartSaver(ctx context.Context, src snapshotter, dst intStore, interval time.Duration, logger *slog.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultSaveInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &saver{src: src, dst: dst, logger: logger}

	done := make(chan struct{})
	go func() {
		defer close(done)
		timer := time.NewTimer(interval)
		defer timer.Stop()

		failures := 0
		for {
			select {
			case <-ctx.Done():
				flushCtx, cancel := context.WithTimeout(context.Background(), finalSaveTimeout)
				if err := s.save(flushCtx); err != nil {
					logger.Error("final clock save failed", "error", err)
				}
				cancel()
				return
			case <-timer.C:
			}

			if err := s.save(ctx); err != nil {
				failures++
				logger.Warn("clock save failed", "error", err, "failures", failures)
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
	return done
}

type saver struct {
	src    snapshotter
	dst    intStore
	logger *slog.Logger

	saved bool
	last  clock.Snapshot
}

func (s *saver) save(ctx context.Context) error {
	snap := s.src.Snapshot()
	if s.saved && snap.Remaining == s.last.Remaining && snap.Mode == s.last.Mode {
		return nil
	}
	if err := s.dst.SetInt(ctx, keyRemaining, snap.Remaining); err != nil {
		return err
	}
	if err := s.dst.Set(ctx, keyMode, snap.Mode.String()); err != nil {
		return err
	}
	s.saved = true
	s.last = snap
	s.logger.Debug("clock saved", "remaining", snap.Remaining, "mode", snap.Mode.String())
	return nil
}

// calculateBackoff doubles base once per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
