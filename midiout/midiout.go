// Package midiout mirrors pad triggers to a MIDI output port, so the drum
// machine can drive hardware alongside (or instead of) the audio backend.
package midiout

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"gridbeat/debug"
)

// Out sends note triggers for (group, pad) hits on a single channel.
type Out struct {
	send    func(gomidi.Message) error
	channel uint8
	notes   NoteMap
}

// Open finds the named output port and prepares a sender on the given
// 1-based channel. The note map defaults to the GM layout when the name
// is unknown.
func Open(portName string, channel int, mapName string) (*Out, error) {
	if channel < 1 || channel > 16 {
		channel = 1
	}
	for _, port := range gomidi.GetOutPorts() {
		if port.String() == portName {
			send, err := gomidi.SendTo(port)
			if err != nil {
				return nil, fmt.Errorf("opening midi port %q: %w", portName, err)
			}
			return &Out{
				send:    send,
				channel: uint8(channel - 1),
				notes:   GetNoteMap(mapName),
			}, nil
		}
	}
	return nil, fmt.Errorf("midi out port %q not found", portName)
}

// Trigger sends a note on/off pair for the pad. Velocity comes from the
// mixer gain; a zero gain sends nothing.
func (o *Out) Trigger(group, pad int, gain float32) {
	if o == nil || gain <= 0 {
		return
	}
	note, ok := o.notes.Note(group, pad)
	if !ok {
		return
	}
	vel := uint8(gain * 127)
	if vel == 0 {
		vel = 1
	}
	o.send(gomidi.NoteOn(o.channel, note, vel))
	o.send(gomidi.NoteOff(o.channel, note))
	debug.Log("midi", "trigger group=%d pad=%d note=%d vel=%d", group, pad, note, vel)
}

// Ports lists the available MIDI output port names.
func Ports() []string {
	var names []string
	for _, port := range gomidi.GetOutPorts() {
		names = append(names, port.String())
	}
	return names
}

// Close releases the MIDI driver.
func Close() {
	gomidi.CloseDriver()
}
