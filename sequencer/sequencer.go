package sequencer

// Hit is a single pad trigger emitted by a pulse.
type Hit struct {
	Group int
	Pad   int
}

// Sequencer owns the pattern store, the global step cursor, and the active
// pattern slot per group. The cursor is a single transport position shared
// by all groups. All operations are total: out-of-range input is ignored.
type Sequencer struct {
	store  *patternStore
	step   int
	active [NumGroups]int
}

// New returns a sequencer at step 0 with every group on pattern 0.
func New() *Sequencer {
	return &Sequencer{store: newPatternStore()}
}

// Tick collects the hits due at the current step and advances the cursor.
// Groups are visited in ascending order and pads ascend within a group, so
// the hit ordering is deterministic. This is the only place the cursor
// moves; callers gate it with the transport.
func (s *Sequencer) Tick() []Hit {
	var hits []Hit
	for group := 0; group < NumGroups; group++ {
		p, ok := s.store.get(group, s.active[group])
		if !ok {
			continue
		}
		for _, pad := range p.HitsAt(s.step) {
			hits = append(hits, Hit{Group: group, Pad: pad})
		}
	}
	s.step = (s.step + 1) % StepsPerPattern
	return hits
}

// RecordHit sets the flag for pad at the current global step in the named
// pattern, creating it on first touch. Recording always targets the step
// the transport is on, which is what makes live overdub work.
func (s *Sequencer) RecordHit(group, patternIdx, pad int) {
	if group < 0 || group >= NumGroups || patternIdx < 0 || patternIdx >= NumPatterns {
		return
	}
	s.store.getOrCreate(group, patternIdx).SetHit(pad, s.step, true)
}

// ClearPattern clears the named pattern if it exists. A pattern that was
// never created is already empty, so that case is a no-op.
func (s *Sequencer) ClearPattern(group, patternIdx int) {
	if p, ok := s.store.get(group, patternIdx); ok {
		p.Clear()
	}
}

// SetActivePattern changes which pattern a group plays and records into,
// taking effect on the next tick. Ignored when group or idx is out of range.
func (s *Sequencer) SetActivePattern(group, idx int) {
	if group < 0 || group >= NumGroups || idx < 0 || idx >= NumPatterns {
		return
	}
	s.active[group] = idx
}

// ActivePattern returns the pattern index a group currently plays.
func (s *Sequencer) ActivePattern(group int) int {
	if group < 0 || group >= NumGroups {
		return 0
	}
	return s.active[group]
}

// ResetPosition rewinds the cursor to step 0.
func (s *Sequencer) ResetPosition() {
	s.step = 0
}

// Step returns the current cursor position.
func (s *Sequencer) Step() int {
	return s.step
}

// Grid returns a snapshot of the named pattern. Missing patterns read as
// all-false; the read path never creates.
func (s *Sequencer) Grid(group, patternIdx int) Grid {
	return s.store.grid(group, patternIdx)
}
