package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned by Parse for text that is not SS, MM:SS or HH:MM:SS.
var ErrInvalidTime = errors.New("invalid time")

// Parse converts "SS", "MM:SS" or "HH:MM:SS" into seconds. Fields must be
// non-negative integers; the total is clamped to MaxSeconds.
func Parse(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	fields := strings.Split(trimmed, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q has too many fields", ErrInvalidTime, trimmed)
	}

	total := 0
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return 0, fmt.Errorf("%w: %q has an empty field", ErrInvalidTime, trimmed)
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, f)
		}
		if n > MaxSeconds {
			n = MaxSeconds
		}
		total = total*60 + n
		if total > MaxSeconds {
			total = MaxSeconds
		}
	}
	return total, nil
}

// ParseOrZero is Parse with unparseable input treated as zero.
func ParseOrZero(text string) int {
	n, err := Parse(text)
	if err != nil {
		return 0
	}
	return n
}

// Format renders seconds as HH:MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
