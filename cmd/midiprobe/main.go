// midiprobe is a small diagnostic for MIDI setups: list ports, then fire
// test notes at one to check the channel and note map before pointing the
// main config at it.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gridbeat/midiout"
	"gridbeat/mixer"
)

func main() {
	defer midiout.Close()

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "note":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		testNotes(os.Args[2], os.Args[3:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  midiprobe list                        list MIDI output ports")
	fmt.Println("  midiprobe note <port> [channel [map]] send a test note per group")
}

func listPorts() {
	ports := midiout.Ports()
	if len(ports) == 0 {
		fmt.Println("no MIDI output ports found")
		return
	}
	for _, name := range ports {
		fmt.Println(name)
	}
}

func testNotes(portName string, args []string) {
	channel := 10
	mapName := midiout.DefaultNoteMap
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			channel = n
		}
	}
	if len(args) > 1 {
		mapName = args[1]
	}

	out, err := midiout.Open(portName, channel, mapName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Pad 0 of each group: kick, low bass, low lead, low vocal.
	for group, name := range mixer.GroupNames {
		fmt.Printf("sending %s pad 0 on channel %d\n", name, channel)
		out.Trigger(group, 0, 0.8)
		time.Sleep(300 * time.Millisecond)
	}
}
