package audio

import (
	"testing"

	"gridbeat/mixer"
	"gridbeat/sequencer"
)

func TestSynthBankIsComplete(t *testing.T) {
	b := NewSynthBank()
	for g := 0; g < mixer.NumGroups; g++ {
		for p := 0; p < sequencer.PadsPerGroup; p++ {
			data, ok := b.Sample(g, p)
			if !ok || len(data) == 0 {
				t.Errorf("pad (%d,%d) has no sample", g, p)
			}
			if b.SampleName(g, p) == "" {
				t.Errorf("pad (%d,%d) has no name", g, p)
			}
		}
	}
}

func TestSynthBankInvalidIndices(t *testing.T) {
	b := NewSynthBank()
	if _, ok := b.Sample(4, 0); ok {
		t.Error("group 4 should have no samples")
	}
	if _, ok := b.Sample(0, 16); ok {
		t.Error("pad 16 should have no samples")
	}
	if name := b.SampleName(-1, 0); name != "" {
		t.Errorf("invalid group name: want empty, got %q", name)
	}
}

func TestScaleGain(t *testing.T) {
	// One sample at +1000, one at -1000.
	data := []byte{0xe8, 0x03, 0x18, 0xfc}

	half := ScaleGain(data, 0.5)
	if got := int16(uint16(half[0]) | uint16(half[1])<<8); got != 500 {
		t.Errorf("half gain positive sample: want 500, got %d", got)
	}
	if got := int16(uint16(half[2]) | uint16(half[3])<<8); got != -500 {
		t.Errorf("half gain negative sample: want -500, got %d", got)
	}

	// Gain above 1 clips at the int16 rails instead of wrapping.
	loud := ScaleGain(data, 40)
	if got := int16(uint16(loud[0]) | uint16(loud[1])<<8); got != 32767 {
		t.Errorf("clipped positive sample: want 32767, got %d", got)
	}
	if got := int16(uint16(loud[2]) | uint16(loud[3])<<8); got != -32768 {
		t.Errorf("clipped negative sample: want -32768, got %d", got)
	}
}

func TestEncodePCMClamps(t *testing.T) {
	data := encodePCM([]float64{0, 1, -1, 2, -2})
	if len(data) != 10 {
		t.Fatalf("want 10 bytes, got %d", len(data))
	}
	read := func(i int) int16 {
		return int16(uint16(data[i*2]) | uint16(data[i*2+1])<<8)
	}
	if read(0) != 0 {
		t.Errorf("zero sample: got %d", read(0))
	}
	if read(1) != 32767 || read(3) != 32767 {
		t.Errorf("full-scale positive: got %d, %d", read(1), read(3))
	}
	if read(2) != -32767 || read(4) != -32767 {
		t.Errorf("full-scale negative: got %d, %d", read(2), read(4))
	}
}
