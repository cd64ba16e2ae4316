// Package tui is the bubbletea front end: one model polling the engine
// on a frame tick and translating the configured key bindings into
// engine operations.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridbeat/config"
	"gridbeat/engine"
	"gridbeat/mixer"
	"gridbeat/sequencer"
	"gridbeat/theme"
	"gridbeat/widgets"
)

// framePeriod is the engine polling interval. Short enough that pulse
// timing error stays well under a 16th note at max tempo.
const framePeriod = 10 * time.Millisecond

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type Model struct {
	eng      *engine.Engine
	keys     config.KeyConfig
	theme    *theme.Theme
	padKeys  [sequencer.PadsPerGroup]string // pad index -> bound key, for display
	now      time.Time
	showHelp bool
	quitting bool
}

func NewModel(eng *engine.Engine, cfg *config.Config, th *theme.Theme) Model {
	m := Model{
		eng:   eng,
		keys:  cfg.Keys,
		theme: th,
		now:   time.Now(),
	}
	for key, pad := range cfg.Keys.Pads {
		if pad >= 0 && pad < sequencer.PadsPerGroup {
			m.padKeys[pad] = key
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return frameTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.now = time.Time(msg)
		m.eng.Update(m.now)
		return m, frameTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	if pad, ok := m.keys.Pads[key]; ok {
		m.eng.TriggerPad(pad)
		return m, nil
	}

	switch key {
	case m.keys.PlayStop:
		m.eng.TogglePlayback(time.Now())
	case m.keys.Record:
		m.eng.ToggleRecording()
	case m.keys.Clear:
		m.eng.ClearPattern()
	case m.keys.NextGroup:
		m.eng.NextGroup()
	case m.keys.PrevGroup:
		m.eng.PrevGroup()
	case m.keys.NextPattern:
		m.eng.NextPattern()
	case m.keys.PrevPattern:
		m.eng.PrevPattern()
	case m.keys.TempoUp:
		m.eng.AdjustTempo(1)
	case m.keys.TempoDown:
		m.eng.AdjustTempo(-1)
	case m.keys.MasterUp:
		m.eng.AdjustMasterVolume(0.05)
	case m.keys.MasterDown:
		m.eng.AdjustMasterVolume(-0.05)
	case m.keys.MasterMute:
		m.eng.ToggleMasterMute()
	default:
		for g := 0; g < mixer.NumGroups; g++ {
			switch key {
			case m.keys.GroupUp[g]:
				m.eng.AdjustGroupVolume(g, 0.05)
			case m.keys.GroupDown[g]:
				m.eng.AdjustGroupVolume(g, -0.05)
			case m.keys.GroupMute[g]:
				m.eng.ToggleGroupMute(g)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(m.renderHeader())
	out.WriteString("\n\n")
	out.WriteString(m.renderGroupTabs())
	out.WriteString("\n\n")
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPadBank(),
		"   ",
		m.renderMixer(),
	))
	out.WriteString("\n\n")
	out.WriteString(m.renderStepGrid())
	out.WriteString("\n\n")
	if m.showHelp {
		out.WriteString(m.renderHelp())
	} else {
		dim := lipgloss.NewStyle().Foreground(m.theme.Faint)
		out.WriteString(dim.Render("space:play  r:record  c:clear  tab:group  ←→:pattern  ↑↓:tempo  ?:help  q:quit"))
	}
	out.WriteString("\n")
	return out.String()
}

func (m Model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	recStyle := lipgloss.NewStyle().Foreground(m.theme.Record).Bold(true)

	playState := "STOP"
	if m.eng.Playing() {
		playState = "PLAY"
	}
	line := fmt.Sprintf("gridbeat  %s  %3dbpm  ptn:%02d  step:%02d",
		playState, m.eng.Tempo(),
		m.eng.ActivePattern(m.eng.CurrentGroup())+1,
		m.eng.Step()+1)
	header := headerStyle.Render(line)
	if m.eng.Recording() {
		header += "  " + recStyle.Render("● REC")
	}
	return header
}

func (m Model) renderGroupTabs() string {
	active := lipgloss.NewStyle().
		Foreground(m.theme.Background).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(m.theme.Faint).
		Padding(0, 1)

	var tabs []string
	for g, name := range mixer.GroupNames {
		label := fmt.Sprintf("%s %02d", name, m.eng.ActivePattern(g)+1)
		if g == m.eng.CurrentGroup() {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderPadBank() string {
	st := widgets.PadStyles{
		Normal: lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface),
		Selected: lipgloss.NewStyle().
			Foreground(m.theme.Background).
			Background(m.theme.Accent).
			Bold(true),
		Flashing: lipgloss.NewStyle().
			Foreground(m.theme.Background).
			Background(m.theme.Bright).
			Bold(true),
	}

	flashing := map[int]bool{}
	for _, hit := range m.eng.Flashing(m.now) {
		if hit.Group == m.eng.CurrentGroup() {
			flashing[hit.Pad] = true
		}
	}

	pads := make([]widgets.Pad, sequencer.PadsPerGroup)
	for i := range pads {
		pads[i] = widgets.Pad{
			Key:      m.padKeys[i],
			Name:     m.eng.SampleName(i),
			Selected: i == m.eng.SelectedPad(),
			Flashing: flashing[i],
		}
	}
	return widgets.RenderPadBank(pads, st)
}

func (m Model) renderStepGrid() string {
	grid := m.eng.Grid()
	playhead := -1
	if m.eng.Playing() {
		playhead = m.eng.Step()
	}

	st := widgets.StepGridStyles{
		Off:         lipgloss.NewStyle().Foreground(m.theme.Faint),
		On:          lipgloss.NewStyle().Foreground(m.theme.Accent),
		OffPlayhead: lipgloss.NewStyle().Foreground(m.theme.Cursor),
		OnPlayhead:  lipgloss.NewStyle().Foreground(m.theme.Cursor).Bold(true),
		RowLabel:    lipgloss.NewStyle().Foreground(m.theme.Faint),
		RowSelected: lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true),
	}

	cells := make([][]widgets.StepCell, sequencer.PadsPerGroup)
	labels := make([]string, sequencer.PadsPerGroup)
	for pad := 0; pad < sequencer.PadsPerGroup; pad++ {
		labels[pad] = m.eng.SampleName(pad)
		row := make([]widgets.StepCell, sequencer.StepsPerPattern)
		for step := 0; step < sequencer.StepsPerPattern; step++ {
			row[step] = widgets.StepCell{
				Active:   grid[pad][step],
				Playhead: step == playhead,
				Selected: pad == m.eng.SelectedPad(),
			}
		}
		cells[pad] = row
	}
	return widgets.RenderStepGrid(cells, labels, st)
}

func (m Model) renderMixer() string {
	mix := m.eng.Mixer()
	label := lipgloss.NewStyle().Foreground(m.theme.Text)
	mutedLabel := lipgloss.NewStyle().Foreground(m.theme.Faint).Strikethrough(true)
	fill := lipgloss.NewStyle().Foreground(m.theme.Accent)
	empty := lipgloss.NewStyle().Foreground(m.theme.Faint)

	const meterWidth = 12
	var lines []string

	name := label
	if mix.MasterMuted() {
		name = mutedLabel
	}
	lines = append(lines, fmt.Sprintf("%s %s %.2f",
		name.Render(fmt.Sprintf("%-7s", "MASTER")),
		widgets.RenderMeter(mix.MasterVolume(), meterWidth, fill, empty),
		mix.MasterVolume()))

	for g, gname := range mixer.GroupNames {
		name := label
		if mix.GroupMuted(g) {
			name = mutedLabel
		}
		lines = append(lines, fmt.Sprintf("%s %s %.2f",
			name.Render(fmt.Sprintf("%-7s", gname)),
			widgets.RenderMeter(mix.GroupVolume(g), meterWidth, fill, empty),
			mix.GroupVolume(g)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	sections := []widgets.KeySection{
		{Title: "Transport", Keys: []widgets.KeyBinding{
			{Key: keyName(m.keys.PlayStop), Desc: "play / stop"},
			{Key: m.keys.Record, Desc: "toggle recording"},
			{Key: m.keys.Clear, Desc: "clear pattern"},
			{Key: m.keys.TempoUp + " / " + m.keys.TempoDown, Desc: "tempo up / down"},
		}},
		{Title: "Navigation", Keys: []widgets.KeyBinding{
			{Key: m.keys.NextGroup + " / " + m.keys.PrevGroup, Desc: "next / prev group"},
			{Key: m.keys.PrevPattern + " / " + m.keys.NextPattern, Desc: "prev / next pattern"},
		}},
		{Title: "Mixer", Keys: []widgets.KeyBinding{
			{Key: m.keys.MasterUp + " / " + m.keys.MasterDown, Desc: "master volume"},
			{Key: m.keys.MasterMute, Desc: "master mute"},
			{Key: "1-4 / shift+1-4", Desc: "group volume up / down"},
			{Key: "f1-f4", Desc: "group mute"},
		}},
	}
	dim := lipgloss.NewStyle().Foreground(m.theme.Faint)
	return dim.Render(widgets.RenderKeyHelp(sections))
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
