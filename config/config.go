// Package config stores user preferences as JSON under
// ~/.config/gridbeat/, loading defaults when no file exists.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MIDIConfig selects an optional MIDI output mirror.
type MIDIConfig struct {
	PortName string `json:"portName,omitempty"`
	Channel  int    `json:"channel,omitempty"` // 1-16
	NoteMap  string `json:"noteMap,omitempty"`
}

// KeyConfig is the full key-binding table. Keys use bubbletea's key names
// ("tab", "shift+tab", "f1", single characters, " " for space).
type KeyConfig struct {
	PlayStop string `json:"playStop,omitempty"`
	Record   string `json:"record,omitempty"`
	Clear    string `json:"clear,omitempty"`

	NextGroup   string `json:"nextGroup,omitempty"`
	PrevGroup   string `json:"prevGroup,omitempty"`
	NextPattern string `json:"nextPattern,omitempty"`
	PrevPattern string `json:"prevPattern,omitempty"`
	TempoUp     string `json:"tempoUp,omitempty"`
	TempoDown   string `json:"tempoDown,omitempty"`

	MasterUp   string    `json:"masterUp,omitempty"`
	MasterDown string    `json:"masterDown,omitempty"`
	MasterMute string    `json:"masterMute,omitempty"`
	GroupUp    [4]string `json:"groupUp,omitempty"`
	GroupDown  [4]string `json:"groupDown,omitempty"`
	GroupMute  [4]string `json:"groupMute,omitempty"`

	// Pads maps a key to a pad index 0..15.
	Pads map[string]int `json:"pads,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Tempo   int        `json:"tempo,omitempty"`
	Palette string     `json:"palette,omitempty"` // optional GPL palette file
	MIDI    MIDIConfig `json:"midi,omitempty"`
	Keys    KeyConfig  `json:"keys,omitempty"`
}

// DefaultConfig returns the stock layout: four keyboard rows mirror the
// 4x4 pad bank, arrows move pattern/tempo, the number row drives group
// volumes.
func DefaultConfig() *Config {
	return &Config{
		Tempo: 120,
		MIDI: MIDIConfig{
			Channel: 10,
			NoteMap: "gm",
		},
		Keys: KeyConfig{
			PlayStop: " ",
			Record:   "r",
			Clear:    "c",

			NextGroup:   "tab",
			PrevGroup:   "shift+tab",
			NextPattern: "right",
			PrevPattern: "left",
			TempoUp:     "up",
			TempoDown:   "down",

			MasterUp:   "=",
			MasterDown: "-",
			MasterMute: "M",
			GroupUp:    [4]string{"1", "2", "3", "4"},
			GroupDown:  [4]string{"!", "@", "#", "$"},
			GroupMute:  [4]string{"f1", "f2", "f3", "f4"},

			Pads: map[string]int{
				"7": 0, "8": 1, "9": 2, "0": 3,
				"u": 4, "i": 5, "o": 6, "p": 7,
				"j": 8, "k": 9, "l": 10, ";": 11,
				"m": 12, ",": 13, ".": 14, "/": 15,
			},
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridbeat"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from its default location, or returns defaults if
// no file exists.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path. Missing fields are
// filled from the defaults, so partial files stay valid.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config to its default location.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// normalize backfills anything a hand-edited file left empty.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Tempo == 0 {
		c.Tempo = def.Tempo
	}
	if c.MIDI.Channel == 0 {
		c.MIDI.Channel = def.MIDI.Channel
	}
	if c.MIDI.NoteMap == "" {
		c.MIDI.NoteMap = def.MIDI.NoteMap
	}
	if c.Keys.PlayStop == "" {
		c.Keys.PlayStop = def.Keys.PlayStop
	}
	if c.Keys.Record == "" {
		c.Keys.Record = def.Keys.Record
	}
	if c.Keys.Clear == "" {
		c.Keys.Clear = def.Keys.Clear
	}
	if c.Keys.NextGroup == "" {
		c.Keys.NextGroup = def.Keys.NextGroup
	}
	if c.Keys.PrevGroup == "" {
		c.Keys.PrevGroup = def.Keys.PrevGroup
	}
	if c.Keys.NextPattern == "" {
		c.Keys.NextPattern = def.Keys.NextPattern
	}
	if c.Keys.PrevPattern == "" {
		c.Keys.PrevPattern = def.Keys.PrevPattern
	}
	if c.Keys.TempoUp == "" {
		c.Keys.TempoUp = def.Keys.TempoUp
	}
	if c.Keys.TempoDown == "" {
		c.Keys.TempoDown = def.Keys.TempoDown
	}
	if c.Keys.MasterUp == "" {
		c.Keys.MasterUp = def.Keys.MasterUp
	}
	if c.Keys.MasterDown == "" {
		c.Keys.MasterDown = def.Keys.MasterDown
	}
	if c.Keys.MasterMute == "" {
		c.Keys.MasterMute = def.Keys.MasterMute
	}
	for i := 0; i < 4; i++ {
		if c.Keys.GroupUp[i] == "" {
			c.Keys.GroupUp[i] = def.Keys.GroupUp[i]
		}
		if c.Keys.GroupDown[i] == "" {
			c.Keys.GroupDown[i] = def.Keys.GroupDown[i]
		}
		if c.Keys.GroupMute[i] == "" {
			c.Keys.GroupMute[i] = def.Keys.GroupMute[i]
		}
	}
	if len(c.Keys.Pads) == 0 {
		c.Keys.Pads = def.Keys.Pads
	}
}
