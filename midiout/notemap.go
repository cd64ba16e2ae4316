package midiout

// NoteMap maps the 4 groups' 16 pads to MIDI notes.
type NoteMap struct {
	Name  string
	Notes [4][16]uint8
}

// Note returns the MIDI note for a pad, false when out of range.
func (m NoteMap) Note(group, pad int) (uint8, bool) {
	if group < 0 || group >= 4 || pad < 0 || pad >= 16 {
		return 0, false
	}
	return m.Notes[group][pad], true
}

// chromatic fills 16 pads walking up in semitones from a base note.
func chromatic(base uint8) [16]uint8 {
	var notes [16]uint8
	for i := range notes {
		notes[i] = base + uint8(i)
	}
	return notes
}

// NoteMaps contains the available layouts. The drum row follows General
// MIDI percussion; the melodic groups get chromatic banks from low to high.
var NoteMaps = map[string]NoteMap{
	"gm": {
		Name: "General MIDI",
		Notes: [4][16]uint8{
			{
				36, // Kick
				38, // Snare
				42, // Closed HH
				46, // Open HH
				49, // Crash
				51, // Ride
				41, // Low Tom
				43, // Mid Tom
				39, // Clap
				37, // Rimshot
				56, // Cowbell
				75, // Clave
				70, // Maracas
				54, // Tambourine
				64, // Low Conga
				63, // High Conga
			},
			chromatic(24), // bass: C1 up
			chromatic(48), // lead: C3 up
			chromatic(60), // vocal: C4 up
		},
	},
}

// DefaultNoteMap is used when the configured map name is unknown.
const DefaultNoteMap = "gm"

// GetNoteMap returns a map by name, defaulting to GM.
func GetNoteMap(name string) NoteMap {
	if m, ok := NoteMaps[name]; ok {
		return m
	}
	return NoteMaps[DefaultNoteMap]
}
