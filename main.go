package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"gridbeat/audio"
	"gridbeat/config"
	"gridbeat/debug"
	"gridbeat/engine"
	"gridbeat/midiout"
	"gridbeat/theme"
	"gridbeat/tui"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "help", "-h", "--help":
			printHelp()
			return
		case "--list-midi":
			for _, name := range midiout.Ports() {
				fmt.Println(name)
			}
			midiout.Close()
			return
		case "--debug":
			if err := debug.Enable(); err != nil {
				fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n", arg)
			printHelp()
			os.Exit(1)
		}
	}
	defer debug.Disable()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Palette
	palette := theme.DefaultPalette()
	if cfg.Palette != "" {
		if p, err := theme.LoadGPL(cfg.Palette); err == nil {
			palette = p
		} else {
			fmt.Fprintf(os.Stderr, "palette %s: %v (using default)\n", cfg.Palette, err)
		}
	}
	th := theme.New(palette)

	// Audio. A failed device open leaves the machine running silent.
	var out audio.Output
	if oto, err := audio.NewOtoOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "audio: %v (running without sound)\n", err)
	} else {
		out = oto
	}

	eng := engine.New(audio.NewSynthBank(), out)
	eng.AdjustTempo(cfg.Tempo - eng.Tempo())

	// Patterns persist next to the config file across runs.
	var patternsPath string
	if dir, err := config.ConfigDir(); err == nil {
		patternsPath = filepath.Join(dir, "patterns.json")
		if err := eng.LoadPatterns(patternsPath); err != nil {
			fmt.Fprintf(os.Stderr, "patterns: %v (starting empty)\n", err)
		}
	}

	// Optional MIDI mirror.
	if cfg.MIDI.PortName != "" {
		mo, err := midiout.Open(cfg.MIDI.PortName, cfg.MIDI.Channel, cfg.MIDI.NoteMap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "midi: %v (running without MIDI out)\n", err)
		} else {
			eng.SetNoteSink(mo)
		}
	}
	defer midiout.Close()

	m := tui.NewModel(eng, cfg, th)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if patternsPath != "" {
		if err := eng.SavePatterns(patternsPath); err != nil {
			fmt.Fprintf(os.Stderr, "patterns: %v\n", err)
		}
	}
}

func printHelp() {
	fmt.Println("gridbeat - a 4-group step sequencer for the terminal")
	fmt.Println()
	fmt.Println("usage: gridbeat [--debug] [--list-midi] [help]")
	fmt.Println()
	fmt.Println("  --debug      write a debug log to ~/.config/gridbeat/debug.log")
	fmt.Println("  --list-midi  print available MIDI output ports and exit")
}
