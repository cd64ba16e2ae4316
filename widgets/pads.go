package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pad describes one cell of the 4x4 pad bank.
type Pad struct {
	Key      string // keyboard binding shown in the corner
	Name     string // sample name
	Selected bool
	Flashing bool
}

// PadStyles are the resolved styles for each pad state.
type PadStyles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Flashing lipgloss.Style
}

// RenderPadBank renders pads as a 4x4 bank, top row first. Pads are
// laid out in pad-index order, four per row.
func RenderPadBank(pads []Pad, st PadStyles) string {
	var rows []string
	for start := 0; start < len(pads); start += 4 {
		end := start + 4
		if end > len(pads) {
			end = len(pads)
		}
		var cells []string
		for _, p := range pads[start:end] {
			cells = append(cells, renderPadCell(p, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func renderPadCell(p Pad, st PadStyles) string {
	style := st.Normal
	if p.Flashing {
		style = st.Flashing
	} else if p.Selected {
		style = st.Selected
	}
	name := p.Name
	if len(name) > 8 {
		name = name[:8]
	}
	return style.Render(fmt.Sprintf(" %-8s %s ", name, p.Key))
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
