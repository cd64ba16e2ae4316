// Package widgets holds the small rendering helpers shared by the TUI.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepCell describes one cell of the step grid.
type StepCell struct {
	Active   bool // step is set in the pattern
	Playhead bool // cursor is on this column
	Selected bool // the cell's pad row is selected
}

// StepGridStyles are the resolved styles for each cell state.
type StepGridStyles struct {
	Off         lipgloss.Style
	On          lipgloss.Style
	OffPlayhead lipgloss.Style
	OnPlayhead  lipgloss.Style
	RowLabel    lipgloss.Style
	RowSelected lipgloss.Style
}

// RenderStepGrid renders the pad-by-step grid with a beat gap every
// four columns. Labels gives the row name for each pad.
func RenderStepGrid(cells [][]StepCell, labels []string, st StepGridStyles) string {
	var lines []string
	for row, steps := range cells {
		var line strings.Builder
		labelStyle := st.RowLabel
		if len(steps) > 0 && steps[0].Selected {
			labelStyle = st.RowSelected
		}
		label := ""
		if row < len(labels) {
			label = labels[row]
		}
		line.WriteString(labelStyle.Render(fmt.Sprintf("%-7s", label)))
		for col, c := range steps {
			if col > 0 && col%4 == 0 {
				line.WriteString(" ")
			}
			line.WriteString(renderStep(c, st))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func renderStep(c StepCell, st StepGridStyles) string {
	switch {
	case c.Active && c.Playhead:
		return st.OnPlayhead.Render("█ ")
	case c.Active:
		return st.On.Render("■ ")
	case c.Playhead:
		return st.OffPlayhead.Render("▪ ")
	default:
		return st.Off.Render("· ")
	}
}

// RenderMeter renders a horizontal level bar of the given width.
func RenderMeter(level float32, width int, fill, empty lipgloss.Style) string {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	n := int(level*float32(width) + 0.5)
	return fill.Render(strings.Repeat("━", n)) + empty.Render(strings.Repeat("╌", width-n))
}
