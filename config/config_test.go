package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tempo != 120 {
		t.Errorf("default tempo: want 120, got %d", cfg.Tempo)
	}
	if cfg.Keys.PlayStop != " " {
		t.Errorf("play/stop key: want space, got %q", cfg.Keys.PlayStop)
	}
	if len(cfg.Keys.Pads) != 16 {
		t.Errorf("want 16 pad keys, got %d", len(cfg.Keys.Pads))
	}

	// Every pad 0..15 must be reachable from exactly one key.
	seen := make(map[int]bool)
	for key, pad := range cfg.Keys.Pads {
		if pad < 0 || pad > 15 {
			t.Errorf("key %q maps to invalid pad %d", key, pad)
		}
		if seen[pad] {
			t.Errorf("pad %d bound twice", pad)
		}
		seen[pad] = true
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tempo != 120 {
		t.Errorf("want default tempo, got %d", cfg.Tempo)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Tempo = 140
	cfg.MIDI.PortName = "Test Port"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Tempo != 140 {
		t.Errorf("tempo: want 140, got %d", loaded.Tempo)
	}
	if loaded.MIDI.PortName != "Test Port" {
		t.Errorf("midi port: want %q, got %q", "Test Port", loaded.MIDI.PortName)
	}
	if loaded.Keys.NextGroup != "tab" {
		t.Errorf("key table lost in round trip: %q", loaded.Keys.NextGroup)
	}
}

func TestPartialFileBackfilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"tempo": 90}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tempo != 90 {
		t.Errorf("tempo: want 90, got %d", cfg.Tempo)
	}
	if cfg.Keys.Record == "" || len(cfg.Keys.Pads) != 16 {
		t.Error("missing fields not backfilled from defaults")
	}
}
