// Package chime plays the sound that marks a finished countdown.
package chime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player plays the finish chime. Play must not block.
type Player interface {
	Play()
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play() {}

// Speaker plays through the system audio device. The device is opened on the
// first Play; if that fails the player stays silent.
type Speaker struct {
	mu     sync.Mutex
	opened bool
	failed bool
	logger *slog.Logger
}

// NewSpeaker returns a Speaker that logs device errors to logger.
func NewSpeaker(logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Speaker{logger: logger}
}

// Play implements Player.
func (s *Speaker) Play() {
	s.mu.Lock()
	if !s.opened && !s.failed {
		if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			s.failed = true
			s.logger.Warn("audio unavailable, chime disabled", "error", err)
		} else {
			s.opened = true
		}
	}
	opened := s.opened
	s.mu.Unlock()

	if opened {
		speaker.Play(Arpeggio(sampleRate))
	}
}

// Close stops playback and releases the audio device if it was opened.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.opened = false
}
