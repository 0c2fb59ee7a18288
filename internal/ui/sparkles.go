package ui

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	sparkleRows          = 5
	sparklesPerBurst     = 6
	sparkleFrames        = 10
	sparkleMaxParticles  = 60
	sparkleReachPx       = 50.0
	sparkleFrameInterval = 50 * time.Millisecond

	// Approximate terminal cell size, used to turn pixel distances into cells.
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

// sparkle is one particle travelling from its origin to origin+delta.
type sparkle struct {
	x0, y0 float64
	dx, dy float64
	age    int
	color  int
}

func (s sparkle) progress() float64 {
	return float64(s.age) / sparkleFrames
}

func (s sparkle) pos() (x, y float64) {
	t := s.progress()
	return s.x0 + s.dx*t, s.y0 + s.dy*t
}

func (s sparkle) glyph() string {
	switch t := s.progress(); {
	case t < 0.4:
		return "✦"
	case t < 0.75:
		return "✧"
	default:
		return "·"
	}
}

// sparkleField holds the particles currently on screen.
type sparkleField struct {
	particles []sparkle
	nextColor int
}

// burst spawns a handful of particles at (x, y), each heading off at a random
// angle for a random distance up to sparkleReachPx.
func (f *sparkleField) burst(rng *rand.Rand, x, y float64) {
	for i := 0; i < sparklesPerBurst; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := rng.Float64() * sparkleReachPx
		f.particles = append(f.particles, sparkle{
			x0:    x,
			y0:    y,
			dx:    math.Cos(angle) * dist / cellWidthPx,
			dy:    math.Sin(angle) * dist / cellHeightPx,
			color: f.nextColor,
		})
		f.nextColor++
	}
	if over := len(f.particles) - sparkleMaxParticles; over > 0 {
		f.particles = append(f.particles[:0], f.particles[over:]...)
	}
}

// step ages every particle by one frame and drops the finished ones.
func (f *sparkleField) step() {
	alive := f.particles[:0]
	for _, p := range f.particles {
		p.age++
		if p.age < sparkleFrames {
			alive = append(alive, p)
		}
	}
	f.particles = alive
}

func (f *sparkleField) active() bool {
	return len(f.particles) > 0
}

// render draws the band as height lines of width cells.
func (f *sparkleField) render(width, height int, colors []string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for _, p := range f.particles {
		x, y := p.pos()
		col, row := int(math.Round(x)), int(math.Round(y))
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}
		style := lipgloss.NewStyle()
		if len(colors) > 0 {
			style = style.Foreground(lipgloss.Color(colors[p.color%len(colors)]))
		}
		grid[row][col] = style.Render(p.glyph())
	}

	lines := make([]string, height)
	for r, cells := range grid {
		lines[r] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}
