// Package theme maps a palette ramp onto the UI color roles.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the resolved colors for every part of the interface.
type Theme struct {
	palette *Palette

	Background lipgloss.Color
	Surface    lipgloss.Color
	Faint      lipgloss.Color
	Text       lipgloss.Color
	Bright     lipgloss.Color
	Accent     lipgloss.Color
	Cursor     lipgloss.Color
	Record     lipgloss.Color
	Muted      lipgloss.Color
}

// New derives the role colors from a palette ramp. A nil palette uses
// the built-in default.
func New(p *Palette) *Theme {
	if p == nil {
		p = DefaultPalette()
	}
	t := &Theme{palette: p}
	t.Background = toColor(p.Lookup(0.0))
	t.Surface = toColor(p.Lookup(0.15))
	t.Faint = toColor(p.Lookup(0.35))
	t.Text = toColor(p.Lookup(0.7))
	t.Bright = toColor(p.Lookup(1.0))
	t.Accent = toColor(p.Lookup(0.85))
	t.Cursor = toColor(p.Lookup(0.95))
	t.Record = lipgloss.Color("#d04040")
	t.Muted = toColor(p.Lookup(0.3))
	return t
}

// Sample returns the palette color at a normalized position, for level
// meters and other continuous displays.
func (t *Theme) Sample(norm float64) lipgloss.Color {
	return toColor(t.palette.Lookup(norm))
}

func toColor(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
