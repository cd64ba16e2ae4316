package engine

import (
	"reflect"
	"testing"
	"time"

	"gridbeat/sequencer"
)

type play struct {
	data []byte
	gain float32
}

type testOutput struct {
	plays []play
}

func (o *testOutput) Play(data []byte, gain float32) {
	o.plays = append(o.plays, play{data: data, gain: gain})
}

func (o *testOutput) flush() {
	o.plays = nil
}

type testBank struct{}

func (testBank) Sample(group, pad int) ([]byte, bool) {
	if group < 0 || group >= 4 || pad < 0 || pad >= 16 {
		return nil, false
	}
	return []byte{byte(group), byte(pad)}, true
}

func (testBank) SampleName(group, pad int) string {
	return "pad"
}

type testSink struct {
	hits []sequencer.Hit
}

func (s *testSink) Trigger(group, pad int, gain float32) {
	s.hits = append(s.hits, sequencer.Hit{Group: group, Pad: pad})
}

func newTestEngine() (*Engine, *testOutput) {
	out := &testOutput{}
	return New(testBank{}, out), out
}

func TestTriggerPadPlaysAtEffectiveGain(t *testing.T) {
	e, out := newTestEngine()
	e.TriggerPad(3)

	if len(out.plays) != 1 {
		t.Fatalf("want 1 play, got %d", len(out.plays))
	}
	if want := float32(0.7) * 0.8; out.plays[0].gain != want {
		t.Errorf("gain: want %v, got %v", want, out.plays[0].gain)
	}
	if e.SelectedPad() != 3 {
		t.Errorf("selected pad: want 3, got %d", e.SelectedPad())
	}
}

func TestTriggerPadOutOfRangeIgnored(t *testing.T) {
	e, out := newTestEngine()
	e.TriggerPad(20)
	e.TriggerPad(-1)

	if len(out.plays) != 0 {
		t.Errorf("invalid pads played %d sounds", len(out.plays))
	}
	if e.SelectedPad() != -1 {
		t.Errorf("selected pad changed: %d", e.SelectedPad())
	}
}

func TestOverdubRecordingWhilePlaying(t *testing.T) {
	e, _ := newTestEngine()
	t0 := time.Unix(100, 0)

	e.TogglePlayback(t0)
	e.ToggleRecording()
	e.TriggerPad(5)

	if !e.Grid()[5][0] {
		t.Error("hit not recorded at (pad 5, step 0)")
	}
}

func TestNoRecordingWhileStopped(t *testing.T) {
	e, out := newTestEngine()
	e.ToggleRecording()
	e.TriggerPad(5)

	if len(out.plays) != 1 {
		t.Errorf("pad should still sound while stopped: %d plays", len(out.plays))
	}
	if e.Grid() != (sequencer.Grid{}) {
		t.Error("recording happened while transport was stopped")
	}
}

func TestUpdateGatesOnTransport(t *testing.T) {
	e, out := newTestEngine()
	t0 := time.Unix(100, 0)

	// Program pad 3 at step 0, then rewind for playback.
	e.TogglePlayback(t0)
	e.ToggleRecording()
	e.TriggerPad(3)
	out.flush()

	// Default tempo 120: one step is 125ms.
	e.Update(t0.Add(100 * time.Millisecond))
	if len(out.plays) != 0 {
		t.Fatalf("pulse fired early: %d plays", len(out.plays))
	}

	e.Update(t0.Add(125 * time.Millisecond))
	if len(out.plays) != 1 {
		t.Fatalf("want 1 play on the due pulse, got %d", len(out.plays))
	}
	if e.Step() != 1 {
		t.Errorf("cursor after pulse: want 1, got %d", e.Step())
	}
}

func TestUpdateMirrorsHitsToSink(t *testing.T) {
	e, _ := newTestEngine()
	sink := &testSink{}
	e.SetNoteSink(sink)
	t0 := time.Unix(100, 0)

	e.TogglePlayback(t0)
	e.ToggleRecording()
	e.TriggerPad(7)
	sink.hits = nil

	e.Update(t0.Add(125 * time.Millisecond))
	want := []sequencer.Hit{{Group: 0, Pad: 7}}
	if !reflect.DeepEqual(want, sink.hits) {
		t.Errorf("sink hits: want %v, got %v", want, sink.hits)
	}
}

func TestMutedGroupStaysSilent(t *testing.T) {
	e, out := newTestEngine()
	e.ToggleGroupMute(0)
	e.TriggerPad(0)

	if len(out.plays) != 0 {
		t.Errorf("muted group played %d sounds", len(out.plays))
	}
}

func TestPatternNavigationWraps(t *testing.T) {
	e, _ := newTestEngine()

	e.PrevPattern()
	if got := e.ActivePattern(0); got != 98 {
		t.Errorf("prev from 0: want 98, got %d", got)
	}
	e.NextPattern()
	if got := e.ActivePattern(0); got != 0 {
		t.Errorf("next from 98: want 0, got %d", got)
	}
}

func TestGroupNavigationWraps(t *testing.T) {
	e, _ := newTestEngine()

	for i := 0; i < 4; i++ {
		e.NextGroup()
	}
	if e.CurrentGroup() != 0 {
		t.Errorf("4 next-groups: want 0, got %d", e.CurrentGroup())
	}
	e.PrevGroup()
	if e.CurrentGroup() != 3 {
		t.Errorf("prev from 0: want 3, got %d", e.CurrentGroup())
	}
}

func TestPatternSlotIsPerGroup(t *testing.T) {
	e, _ := newTestEngine()
	e.NextPattern() // group 0 → slot 1
	e.NextGroup()
	if got := e.ActivePattern(1); got != 0 {
		t.Errorf("group 1 slot moved with group 0: %d", got)
	}
	if got := e.ActivePattern(0); got != 1 {
		t.Errorf("group 0 slot: want 1, got %d", got)
	}
}

func TestTogglePlaybackRewinds(t *testing.T) {
	e, _ := newTestEngine()
	t0 := time.Unix(100, 0)

	e.TogglePlayback(t0)
	e.Update(t0.Add(125 * time.Millisecond))
	e.Update(t0.Add(250 * time.Millisecond))
	if e.Step() != 2 {
		t.Fatalf("want step 2 before stop, got %d", e.Step())
	}

	t1 := t0.Add(time.Second)
	e.TogglePlayback(t1) // stop: position untouched
	if e.Step() != 2 {
		t.Errorf("stop moved the position: %d", e.Step())
	}
	e.TogglePlayback(t1.Add(time.Second)) // start: rewind
	if e.Step() != 0 {
		t.Errorf("start did not rewind: %d", e.Step())
	}
}

func TestClearPatternTargetsActiveSlot(t *testing.T) {
	e, _ := newTestEngine()
	t0 := time.Unix(100, 0)

	e.TogglePlayback(t0)
	e.ToggleRecording()
	e.TriggerPad(2)
	e.ClearPattern()

	if e.Grid() != (sequencer.Grid{}) {
		t.Error("clear left hits in the active pattern")
	}
}

func TestFlashWindow(t *testing.T) {
	e, _ := newTestEngine()
	t0 := time.Unix(100, 0)

	e.TogglePlayback(t0)
	e.ToggleRecording()
	e.TriggerPad(4)

	due := t0.Add(125 * time.Millisecond)
	e.Update(due)

	want := []sequencer.Hit{{Group: 0, Pad: 4}}
	if got := e.Flashing(due.Add(100 * time.Millisecond)); !reflect.DeepEqual(want, got) {
		t.Errorf("inside window: want %v, got %v", want, got)
	}
	if got := e.Flashing(due.Add(200 * time.Millisecond)); got != nil {
		t.Errorf("outside window: want none, got %v", got)
	}
}

func TestInvalidMixerWritesLeaveStateUnchanged(t *testing.T) {
	e, out := newTestEngine()
	e.AdjustGroupVolume(9, 0.1)
	e.ToggleGroupMute(9)

	e.TriggerPad(0)
	if len(out.plays) != 1 || out.plays[0].gain != float32(0.7)*0.8 {
		t.Errorf("gain drifted after invalid mixer writes: %+v", out.plays)
	}
}
