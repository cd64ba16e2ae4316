// Package engine ties the sequencer, transport, and mixer to the sample
// bank and the playback backends. Everything here is driven from the single
// TUI update loop; dispatched voices only ever receive copied data.
package engine

import (
	"time"

	"gridbeat/audio"
	"gridbeat/debug"
	"gridbeat/mixer"
	"gridbeat/sequencer"
)

// flashWindow is how long a fired pad stays highlighted in the UI.
const flashWindow = 150 * time.Millisecond

// NoteSink mirrors hits to an external instrument (MIDI out).
type NoteSink interface {
	Trigger(group, pad int, gain float32)
}

// Engine owns one sequencer, one transport, and one mixer for the process
// lifetime. All operations are total: bad indices are ignored, missing
// samples are skipped, and nothing here ever stops playback with an error.
type Engine struct {
	seq       *sequencer.Sequencer
	transport *sequencer.Transport
	mix       *mixer.Mixer
	bank      audio.SampleBank
	out       audio.Output
	sink      NoteSink

	currentGroup int
	recording    bool
	selectedPad  int

	flash   []sequencer.Hit
	flashAt time.Time
}

// New assembles an engine around a sample bank and an output. A nil output
// is replaced with a no-op one, so the engine runs headless.
func New(bank audio.SampleBank, out audio.Output) *Engine {
	if out == nil {
		out = audio.NopOutput{}
	}
	return &Engine{
		seq:         sequencer.New(),
		transport:   sequencer.NewTransport(),
		mix:         mixer.New(),
		bank:        bank,
		out:         out,
		selectedPad: -1,
	}
}

// SetNoteSink attaches an external note mirror. Pass nil to detach.
func (e *Engine) SetNoteSink(s NoteSink) {
	e.sink = s
}

// Update is the per-frame gate: it asks the transport whether a pulse is
// due at now and, if so, ticks the sequencer and sounds every hit. Called
// once per polling iteration by the UI loop.
func (e *Engine) Update(now time.Time) {
	if !e.transport.TickDue(now) {
		return
	}
	hits := e.seq.Tick()
	for _, hit := range hits {
		e.playHit(hit.Group, hit.Pad)
	}
	if len(hits) > 0 {
		e.flash = hits
		e.flashAt = now
	}
}

// playHit sounds one pad at its effective gain. A missing sample or a zero
// gain is a silent skip, never an error.
func (e *Engine) playHit(group, pad int) {
	gain := e.mix.EffectiveGain(group)
	if data, ok := e.bank.Sample(group, pad); ok && gain > 0 {
		e.out.Play(data, gain)
	}
	if e.sink != nil {
		e.sink.Trigger(group, pad, gain)
	}
	debug.Log("play", "group=%d pad=%d gain=%.3f", group, pad, gain)
}

// TriggerPad sounds a pad in the current group and, when recording while
// playing, overdubs it at the step the transport is currently on. Ignored
// for pad indices outside 0..15.
func (e *Engine) TriggerPad(pad int) {
	if pad < 0 || pad >= sequencer.PadsPerGroup {
		return
	}
	e.playHit(e.currentGroup, pad)
	if e.recording && e.transport.Playing() {
		e.seq.RecordHit(e.currentGroup, e.seq.ActivePattern(e.currentGroup), pad)
	}
	e.selectedPad = pad
}

// TogglePlayback starts or stops the transport. Starting rewinds the
// pattern to step 0; stopping leaves the position alone.
func (e *Engine) TogglePlayback(now time.Time) {
	if e.transport.Toggle(now) {
		e.seq.ResetPosition()
	}
	debug.Log("transport", "playing=%v", e.transport.Playing())
}

// ToggleRecording flips overdub recording.
func (e *Engine) ToggleRecording() {
	e.recording = !e.recording
}

// ClearPattern wipes the current group's active pattern.
func (e *Engine) ClearPattern() {
	e.seq.ClearPattern(e.currentGroup, e.seq.ActivePattern(e.currentGroup))
}

// NextGroup selects the next group, wrapping after the last.
func (e *Engine) NextGroup() {
	e.currentGroup = (e.currentGroup + 1) % sequencer.NumGroups
	e.selectedPad = -1
}

// PrevGroup selects the previous group, wrapping before the first.
func (e *Engine) PrevGroup() {
	e.currentGroup = (e.currentGroup + sequencer.NumGroups - 1) % sequencer.NumGroups
	e.selectedPad = -1
}

// NextPattern advances the current group's pattern slot, 98 wrapping to 0.
func (e *Engine) NextPattern() {
	idx := (e.seq.ActivePattern(e.currentGroup) + 1) % sequencer.NumPatterns
	e.seq.SetActivePattern(e.currentGroup, idx)
}

// PrevPattern steps the current group's pattern slot back, 0 wrapping to 98.
func (e *Engine) PrevPattern() {
	idx := e.seq.ActivePattern(e.currentGroup)
	if idx == 0 {
		idx = sequencer.NumPatterns - 1
	} else {
		idx--
	}
	e.seq.SetActivePattern(e.currentGroup, idx)
}

// AdjustTempo adds delta BPM, clamped by the transport.
func (e *Engine) AdjustTempo(delta int) {
	e.transport.AdjustTempo(delta)
}

// SavePatterns writes the pattern store to path.
func (e *Engine) SavePatterns(path string) error {
	return e.seq.Save(path)
}

// LoadPatterns restores the pattern store from path. Missing files are
// fine; the machine just starts empty.
func (e *Engine) LoadPatterns(path string) error {
	return e.seq.Load(path)
}

// Mixer passthroughs.

func (e *Engine) AdjustMasterVolume(delta float32)       { e.mix.AdjustMasterVolume(delta) }
func (e *Engine) ToggleMasterMute()                      { e.mix.ToggleMasterMute() }
func (e *Engine) AdjustGroupVolume(g int, delta float32) { e.mix.AdjustGroupVolume(g, delta) }
func (e *Engine) ToggleGroupMute(g int)                  { e.mix.ToggleGroupMute(g) }

// Read accessors for rendering. Snapshots only; nothing returned here can
// mutate engine state.

func (e *Engine) CurrentGroup() int { return e.currentGroup }
func (e *Engine) Playing() bool     { return e.transport.Playing() }
func (e *Engine) Recording() bool   { return e.recording }
func (e *Engine) Tempo() int        { return e.transport.Tempo() }
func (e *Engine) Step() int         { return e.seq.Step() }
func (e *Engine) SelectedPad() int  { return e.selectedPad }

// ActivePattern returns the pattern slot a group plays.
func (e *Engine) ActivePattern(group int) int {
	return e.seq.ActivePattern(group)
}

// Grid returns a snapshot of the current group's active pattern.
func (e *Engine) Grid() sequencer.Grid {
	return e.seq.Grid(e.currentGroup, e.seq.ActivePattern(e.currentGroup))
}

// SampleName returns the display name for a pad in the current group.
func (e *Engine) SampleName(pad int) string {
	return e.bank.SampleName(e.currentGroup, pad)
}

// Mixer exposes levels and mutes for the mixer panel.
func (e *Engine) Mixer() *mixer.Mixer {
	return e.mix
}

// Flashing returns the hits fired within the flash window before now.
func (e *Engine) Flashing(now time.Time) []sequencer.Hit {
	if now.Sub(e.flashAt) > flashWindow {
		return nil
	}
	return e.flash
}
