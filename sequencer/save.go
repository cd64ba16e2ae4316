package sequencer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// savedPattern is one non-empty pattern in a save file. Steps holds the
// set step indices per pad, keeping empty rows out of the file.
type savedPattern struct {
	Group int           `json:"group"`
	Index int           `json:"index"`
	Steps map[int][]int `json:"steps"`
}

type saveFile struct {
	Version  int            `json:"version"`
	Active   [NumGroups]int `json:"active"`
	Patterns []savedPattern `json:"patterns"`
}

const saveVersion = 1

// Save writes every non-empty pattern and the active slots to path as JSON.
func (s *Sequencer) Save(path string) error {
	out := saveFile{Version: saveVersion, Active: s.active}

	for key, p := range s.store.patterns {
		steps := make(map[int][]int)
		for pad := 0; pad < PadsPerGroup; pad++ {
			for step := 0; step < StepsPerPattern; step++ {
				if p.steps[pad][step] {
					steps[pad] = append(steps[pad], step)
				}
			}
		}
		if len(steps) == 0 {
			continue
		}
		out.Patterns = append(out.Patterns, savedPattern{
			Group: key.group,
			Index: key.index,
			Steps: steps,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load replaces the sequencer's patterns and active slots with the
// contents of a save file. A missing file leaves the sequencer untouched
// and returns nil, so a fresh install starts empty.
func (s *Sequencer) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var in saveFile
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if in.Version != saveVersion {
		return fmt.Errorf("%s: unsupported save version %d", path, in.Version)
	}

	s.store = newPatternStore()
	for g, idx := range in.Active {
		s.SetActivePattern(g, idx)
	}
	for _, sp := range in.Patterns {
		if sp.Group < 0 || sp.Group >= NumGroups || sp.Index < 0 || sp.Index >= NumPatterns {
			continue
		}
		p := s.store.getOrCreate(sp.Group, sp.Index)
		for pad, steps := range sp.Steps {
			for _, step := range steps {
				p.SetHit(pad, step, true)
			}
		}
	}
	return nil
}
