package sequencer

import "time"

// Tempo bounds in BPM. Every adjustment clamps into this range.
const (
	MinTempo     = 60
	MaxTempo     = 300
	DefaultTempo = 120

	stepsPerBeat = 4 // sixteenth notes: 16 steps = one 4/4 bar
)

// Transport decides when a pulse is due. It has no knowledge of patterns;
// it only tracks tempo, the playing flag, and the time of the last pulse
// that actually fired.
type Transport struct {
	tempo    int
	playing  bool
	lastTick time.Time
}

// NewTransport returns a stopped transport at the default tempo.
func NewTransport() *Transport {
	return &Transport{tempo: DefaultTempo}
}

// Toggle flips between stopped and playing. It reports whether the
// transport just started, so the caller can rewind the sequencer: the
// position resets only on the transition into playing, never on stop.
func (t *Transport) Toggle(now time.Time) (started bool) {
	t.playing = !t.playing
	if t.playing {
		t.lastTick = now
		return true
	}
	return false
}

// Playing reports whether pulses fire at all.
func (t *Transport) Playing() bool {
	return t.playing
}

// Tempo returns the current BPM.
func (t *Transport) Tempo() int {
	return t.tempo
}

// SetTempo sets the BPM, clamped to [MinTempo, MaxTempo].
func (t *Transport) SetTempo(bpm int) {
	if bpm < MinTempo {
		bpm = MinTempo
	}
	if bpm > MaxTempo {
		bpm = MaxTempo
	}
	t.tempo = bpm
}

// AdjustTempo adds delta BPM, clamped. Takes effect on the next gate check.
func (t *Transport) AdjustTempo(delta int) {
	t.SetTempo(t.tempo + delta)
}

// StepDuration returns the pulse period: 60000ms / (tempo * 4).
func (t *Transport) StepDuration() time.Duration {
	return time.Minute / time.Duration(t.tempo*stepsPerBeat)
}

// TickDue reports whether a pulse is due at now and, if so, resets the
// reference point to now. The reference moves to the actual fire time
// rather than advancing by the period, so a late check slips the phase
// instead of bunching pulses.
func (t *Transport) TickDue(now time.Time) bool {
	if !t.playing {
		return false
	}
	if now.Sub(t.lastTick) < t.StepDuration() {
		return false
	}
	t.lastTick = now
	return true
}
