package sequencer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")

	s := New()
	s.RecordHit(0, 0, 3)
	s.Tick() // move to step 1
	s.RecordHit(2, 40, 7)
	s.SetActivePattern(2, 40)

	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := New()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if !loaded.Grid(0, 0)[3][0] {
		t.Error("pattern (0,0) lost pad 3 step 0")
	}
	if !loaded.Grid(2, 40)[7][1] {
		t.Error("pattern (2,40) lost pad 7 step 1")
	}
	if got := loaded.ActivePattern(2); got != 40 {
		t.Errorf("active pattern for group 2: want 40, got %d", got)
	}
}

func TestSaveSkipsEmptyPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")

	s := New()
	s.RecordHit(1, 5, 0)
	s.ClearPattern(1, 5) // created then emptied

	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := New()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if n := len(loaded.store.patterns); n != 0 {
		t.Errorf("empty pattern round-tripped into the store: %d entries", n)
	}
}

func TestLoadMissingFileIsNoop(t *testing.T) {
	s := New()
	s.RecordHit(0, 0, 0)

	if err := s.Load(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if got := s.Grid(0, 0); got == (Grid{}) {
		t.Error("loading a missing file wiped existing patterns")
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := New().Load(path); err == nil {
		t.Error("want error for unsupported save version")
	}
}
