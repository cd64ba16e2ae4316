package sequencer

// Grid dimensions. A pattern is one bar of sixteenth notes for one group.
const (
	NumGroups       = 4
	NumPatterns     = 99
	PadsPerGroup    = 16
	StepsPerPattern = 16
)

// Grid is a value-copy snapshot of a pattern, indexed [pad][step].
type Grid [PadsPerGroup][StepsPerPattern]bool

// Pattern holds the programmed hits for one group's pattern slot.
// Dimensions are fixed at construction; out-of-range access is a no-op.
type Pattern struct {
	steps Grid
}

// NewPattern returns an all-false pattern.
func NewPattern() *Pattern {
	return &Pattern{}
}

// SetHit writes a single step flag. Ignored if pad or step is out of range.
func (p *Pattern) SetHit(pad, step int, on bool) {
	if pad < 0 || pad >= PadsPerGroup || step < 0 || step >= StepsPerPattern {
		return
	}
	p.steps[pad][step] = on
}

// HitsAt returns the pads with a hit at the given step, in ascending pad
// order. Returns nil for an out-of-range step.
func (p *Pattern) HitsAt(step int) []int {
	if step < 0 || step >= StepsPerPattern {
		return nil
	}
	var hits []int
	for pad := 0; pad < PadsPerGroup; pad++ {
		if p.steps[pad][step] {
			hits = append(hits, pad)
		}
	}
	return hits
}

// Clear resets every step flag.
func (p *Pattern) Clear() {
	p.steps = Grid{}
}

// Snapshot returns a copy of the grid, safe to hand to a renderer.
func (p *Pattern) Snapshot() Grid {
	return p.steps
}

type patternKey struct {
	group int
	index int
}

// patternStore is a sparse collection of patterns. A missing key reads the
// same as an all-false pattern; only mutating paths insert.
type patternStore struct {
	patterns map[patternKey]*Pattern
}

func newPatternStore() *patternStore {
	return &patternStore{patterns: make(map[patternKey]*Pattern)}
}

// getOrCreate returns the pattern for (group, index), inserting a fresh one
// on first touch.
func (ps *patternStore) getOrCreate(group, index int) *Pattern {
	key := patternKey{group, index}
	p, ok := ps.patterns[key]
	if !ok {
		p = NewPattern()
		ps.patterns[key] = p
	}
	return p
}

// get returns the pattern for (group, index) without inserting.
func (ps *patternStore) get(group, index int) (*Pattern, bool) {
	p, ok := ps.patterns[patternKey{group, index}]
	return p, ok
}

// grid returns a snapshot for (group, index), synthesizing an empty grid
// for keys that were never created. Never inserts.
func (ps *patternStore) grid(group, index int) Grid {
	if p, ok := ps.patterns[patternKey{group, index}]; ok {
		return p.Snapshot()
	}
	return Grid{}
}
