package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear attack/release envelope.
type tone struct {
	freq     float64
	phase    float64
	gain     float64
	position int
	total    int
	attack   int
	release  int
	rate     beep.SampleRate
}

// Tone returns a finite sine streamer of the given frequency and length.
func Tone(freq float64, duration, attack, release time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &tone{
		freq:    freq,
		gain:    gain,
		total:   total,
		attack:  att,
		release: rel,
		rate:    rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		val := math.Sin(2*math.Pi*t.phase) * t.gain * t.envelope()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.position < t.attack:
		return float64(t.position) / float64(t.attack)
	case t.release > 0 && t.position >= t.total-t.release:
		return float64(t.total-t.position) / float64(t.release)
	default:
		return 1
	}
}

func (t *tone) Err() error { return nil }

// Note frequencies for the finish arpeggio (C major, fifth octave).
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// Arpeggio builds the finish chime: three rising notes with short gaps.
func Arpeggio(rate beep.SampleRate) beep.Streamer {
	const (
		noteLen = 180 * time.Millisecond
		gap     = 40 * time.Millisecond
		attack  = 15 * time.Millisecond
		release = 90 * time.Millisecond
		gain    = 0.25
	)
	var parts []beep.Streamer
	for i, f := range []float64{noteC5, noteE5, noteG5} {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(gap)))
		}
		parts = append(parts, Tone(f, noteLen, attack, release, gain, rate))
	}
	return beep.Seq(parts...)
}
