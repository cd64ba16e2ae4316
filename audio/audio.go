// Package audio provides the sample bank and the playback backends for the
// drum machine. Samples are mono 16-bit little-endian PCM; the engine hands
// each triggered sound to an Output together with a scalar gain.
package audio

// SampleRate for all built-in samples and the output device.
const SampleRate = 44100

// SampleBank looks up raw sample bytes and display names by (group, pad).
type SampleBank interface {
	// Sample returns the PCM for a pad, or false if the pad has no sound.
	Sample(group, pad int) ([]byte, bool)
	// SampleName returns the display name for a pad, or "" if unmapped.
	SampleName(group, pad int) string
}

// Output plays a single sound at the given gain. Implementations must not
// retain data past the call; the engine may reuse it.
type Output interface {
	Play(data []byte, gain float32)
}

// NopOutput discards everything. It keeps the engine fully functional when
// no audio device is available.
type NopOutput struct{}

func (NopOutput) Play(data []byte, gain float32) {}
