package audio

import (
	"math"
	"math/rand"
)

// Waveform generators for the built-in bank. Everything renders to mono
// float64 in [-1,1] and is encoded to 16-bit LE PCM once at startup.

func renderFrames(dur float64) []float64 {
	return make([]float64, int(dur*SampleRate))
}

// tone renders a plain sine with an exponential decay envelope.
func tone(freq, dur, decay float64) []float64 {
	out := renderFrames(dur)
	for i := range out {
		t := float64(i) / SampleRate
		out[i] = math.Sin(2*math.Pi*freq*t) * math.Exp(-decay*t)
	}
	return out
}

// saw renders a band-limited-enough sawtooth for low notes.
func saw(freq, dur, decay float64) []float64 {
	out := renderFrames(dur)
	for i := range out {
		t := float64(i) / SampleRate
		phase := math.Mod(freq*t, 1)
		out[i] = (2*phase - 1) * math.Exp(-decay*t)
	}
	return out
}

// square renders a square wave, slightly attenuated to tame its energy.
func square(freq, dur, decay float64) []float64 {
	out := renderFrames(dur)
	for i := range out {
		t := float64(i) / SampleRate
		v := -0.7
		if math.Sin(2*math.Pi*freq*t) >= 0 {
			v = 0.7
		}
		out[i] = v * math.Exp(-decay*t)
	}
	return out
}

// sweep renders a sine whose frequency glides from f0 to f1. The classic
// kick recipe is a fast downward sweep.
func sweep(f0, f1, dur, decay float64) []float64 {
	out := renderFrames(dur)
	phase := 0.0
	for i := range out {
		t := float64(i) / SampleRate
		f := f0 + (f1-f0)*(t/dur)
		phase += 2 * math.Pi * f / SampleRate
		out[i] = math.Sin(phase) * math.Exp(-decay*t)
	}
	return out
}

// noise renders white noise with an exponential decay. The rng is seeded
// per call so every bank build sounds the same.
func noise(dur, decay float64) []float64 {
	rng := rand.New(rand.NewSource(1024))
	out := renderFrames(dur)
	for i := range out {
		t := float64(i) / SampleRate
		out[i] = (rng.Float64()*2 - 1) * math.Exp(-decay*t)
	}
	return out
}

// mix sums sources sample by sample, scaling to avoid clipping.
func mix(sources ...[]float64) []float64 {
	n := 0
	for _, s := range sources {
		if len(s) > n {
			n = len(s)
		}
	}
	out := make([]float64, n)
	scale := 1 / float64(len(sources))
	for _, s := range sources {
		for i, v := range s {
			out[i] += v * scale
		}
	}
	return out
}

// reverse flips a rendered sound end to front.
func reverse(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// echo appends decaying repeats of the source at the given spacing.
func echo(s []float64, repeats int, spacing float64, falloff float64) []float64 {
	gap := int(spacing * SampleRate)
	out := make([]float64, len(s)+gap*repeats)
	copy(out, s)
	gain := 1.0
	for r := 1; r <= repeats; r++ {
		gain *= falloff
		off := gap * r
		for i, v := range s {
			out[off+i] += v * gain
		}
	}
	return out
}

// vibrato modulates a sine's pitch, used for the FM-ish pads.
func vibrato(freq, modFreq, depth, dur, decay float64) []float64 {
	out := renderFrames(dur)
	phase := 0.0
	for i := range out {
		t := float64(i) / SampleRate
		f := freq + depth*math.Sin(2*math.Pi*modFreq*t)
		phase += 2 * math.Pi * f / SampleRate
		out[i] = math.Sin(phase) * math.Exp(-decay*t)
	}
	return out
}
