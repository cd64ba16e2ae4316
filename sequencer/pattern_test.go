package sequencer

import (
	"reflect"
	"testing"
)

func TestPatternSetAndReadBack(t *testing.T) {
	p := NewPattern()
	p.SetHit(3, 7, true)
	p.SetHit(5, 7, true)
	p.SetHit(5, 8, true)

	if want, got := []int{3, 5}, p.HitsAt(7); !reflect.DeepEqual(want, got) {
		t.Errorf("hits at step 7: want %v, got %v", want, got)
	}
	if want, got := []int{5}, p.HitsAt(8); !reflect.DeepEqual(want, got) {
		t.Errorf("hits at step 8: want %v, got %v", want, got)
	}
	if got := p.HitsAt(0); got != nil {
		t.Errorf("hits at empty step: want none, got %v", got)
	}
}

func TestPatternOutOfRangeIsNoop(t *testing.T) {
	p := NewPattern()
	p.SetHit(16, 0, true)
	p.SetHit(0, 16, true)
	p.SetHit(-1, 0, true)
	p.SetHit(0, -1, true)

	if got := p.Snapshot(); got != (Grid{}) {
		t.Errorf("out-of-range writes changed the grid: %v", got)
	}
	if got := p.HitsAt(16); got != nil {
		t.Errorf("out-of-range step: want nil, got %v", got)
	}
	if got := p.HitsAt(-1); got != nil {
		t.Errorf("negative step: want nil, got %v", got)
	}
}

func TestPatternClear(t *testing.T) {
	p := NewPattern()
	for pad := 0; pad < PadsPerGroup; pad++ {
		p.SetHit(pad, pad, true)
	}
	p.Clear()
	if got := p.Snapshot(); got != (Grid{}) {
		t.Errorf("clear left hits behind: %v", got)
	}
}

func TestStoreReadPathDoesNotCreate(t *testing.T) {
	ps := newPatternStore()

	if got := ps.grid(2, 42); got != (Grid{}) {
		t.Errorf("missing key: want empty grid, got %v", got)
	}
	if len(ps.patterns) != 0 {
		t.Errorf("grid() inserted a pattern: store has %d entries", len(ps.patterns))
	}

	ps.getOrCreate(2, 42).SetHit(1, 1, true)
	if len(ps.patterns) != 1 {
		t.Fatalf("want 1 stored pattern, got %d", len(ps.patterns))
	}
	if !ps.grid(2, 42)[1][1] {
		t.Error("stored hit not visible through grid()")
	}
}
