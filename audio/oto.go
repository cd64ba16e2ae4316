package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OtoOutput plays samples through the system audio device. Each trigger
// gets its own fire-and-forget player, so overlapping hits layer instead
// of cutting each other off.
type OtoOutput struct {
	ctx *oto.Context
}

// NewOtoOutput opens the audio device and waits until it is ready.
func NewOtoOutput() (*OtoOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot open audio device: %w", err)
	}
	<-ready
	return &OtoOutput{ctx: ctx}, nil
}

// Play implements Output. The gain is baked into a private copy of the PCM
// before dispatch; the voice never touches shared state afterwards.
func (o *OtoOutput) Play(data []byte, gain float32) {
	if len(data) == 0 || gain <= 0 {
		return
	}
	scaled := ScaleGain(data, gain)
	p := o.ctx.NewPlayer(bytes.NewReader(scaled))
	p.Play()
	go func() {
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
}
