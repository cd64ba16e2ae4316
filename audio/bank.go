package audio

import (
	"gridbeat/mixer"
	"gridbeat/sequencer"
)

// SynthBank is the built-in sample bank: every pad of every group gets a
// synthesized sound at startup, so the machine plays with no asset files.
type SynthBank struct {
	samples [mixer.NumGroups][sequencer.PadsPerGroup][]byte
	names   [mixer.NumGroups][sequencer.PadsPerGroup]string
}

var bankNames = [mixer.NumGroups][sequencer.PadsPerGroup]string{
	{
		"Kick", "Snare", "HiHat", "OpenHat",
		"Crash", "Ride", "Tom1", "Tom2",
		"Perc1", "Perc2", "Perc3", "Perc4",
		"FX1", "FX2", "FX3", "FX4",
	},
	{
		"Bass1", "Bass2", "Sub1", "Sub2",
		"Pluck1", "Pluck2", "Saw1", "Saw2",
		"Sine1", "Sine2", "FM1", "FM2",
		"Noise1", "Noise2", "Sweep1", "Sweep2",
	},
	{
		"Lead1", "Lead2", "Arp1", "Arp2",
		"Pad1", "Pad2", "Strings1", "Strings2",
		"Brass1", "Brass2", "Choir1", "Choir2",
		"Organ1", "Organ2", "Piano1", "Piano2",
	},
	{
		"Vocal1", "Vocal2", "Chop1", "Chop2",
		"Voice1", "Voice2", "Speak1", "Speak2",
		"Breath1", "Breath2", "Scratch1", "Scratch2",
		"Reverse1", "Reverse2", "Echo1", "Echo2",
	},
}

// NewSynthBank renders every pad's recipe and encodes it to PCM.
func NewSynthBank() *SynthBank {
	b := &SynthBank{names: bankNames}
	recipes := [mixer.NumGroups][sequencer.PadsPerGroup]func() []float64{
		drumRecipes(),
		bassRecipes(),
		leadRecipes(),
		vocalRecipes(),
	}
	for g := range recipes {
		for p, recipe := range recipes[g] {
			b.samples[g][p] = encodePCM(recipe())
		}
	}
	return b
}

// Sample implements SampleBank.
func (b *SynthBank) Sample(group, pad int) ([]byte, bool) {
	if group < 0 || group >= mixer.NumGroups || pad < 0 || pad >= sequencer.PadsPerGroup {
		return nil, false
	}
	return b.samples[group][pad], true
}

// SampleName implements SampleBank.
func (b *SynthBank) SampleName(group, pad int) string {
	if group < 0 || group >= mixer.NumGroups || pad < 0 || pad >= sequencer.PadsPerGroup {
		return ""
	}
	return b.names[group][pad]
}

func drumRecipes() [sequencer.PadsPerGroup]func() []float64 {
	return [sequencer.PadsPerGroup]func() []float64{
		func() []float64 { return sweep(120, 40, 0.20, 18) },                       // Kick
		func() []float64 { return mix(tone(190, 0.16, 22), noise(0.16, 26)) },      // Snare
		func() []float64 { return noise(0.05, 90) },                                // HiHat
		func() []float64 { return noise(0.28, 12) },                                // OpenHat
		func() []float64 { return noise(0.70, 4) },                                 // Crash
		func() []float64 { return mix(tone(480, 0.45, 7), noise(0.45, 9)) },        // Ride
		func() []float64 { return sweep(170, 95, 0.22, 12) },                       // Tom1
		func() []float64 { return sweep(130, 70, 0.24, 11) },                       // Tom2
		func() []float64 { return tone(820, 0.08, 45) },                            // Perc1
		func() []float64 { return tone(620, 0.10, 40) },                            // Perc2
		func() []float64 { return mix(tone(1040, 0.06, 60), noise(0.06, 70)) },     // Perc3
		func() []float64 { return noise(0.10, 50) },                                // Perc4
		func() []float64 { return sweep(200, 2000, 0.30, 8) },                      // FX1
		func() []float64 { return sweep(2000, 120, 0.30, 8) },                      // FX2
		func() []float64 { return echo(noise(0.05, 80), 3, 0.09, 0.5) },            // FX3
		func() []float64 { return vibrato(440, 30, 120, 0.25, 10) },                // FX4
	}
}

func bassRecipes() [sequencer.PadsPerGroup]func() []float64 {
	return [sequencer.PadsPerGroup]func() []float64{
		func() []float64 { return saw(55, 0.35, 8) },              // Bass1 (A1)
		func() []float64 { return saw(62, 0.35, 8) },              // Bass2 (B1)
		func() []float64 { return tone(41, 0.45, 5) },             // Sub1 (E1)
		func() []float64 { return tone(49, 0.45, 5) },             // Sub2 (G1)
		func() []float64 { return saw(82, 0.12, 30) },             // Pluck1
		func() []float64 { return saw(98, 0.12, 30) },             // Pluck2
		func() []float64 { return saw(65, 0.30, 9) },              // Saw1 (C2)
		func() []float64 { return saw(73, 0.30, 9) },              // Saw2 (D2)
		func() []float64 { return tone(65, 0.35, 7) },             // Sine1
		func() []float64 { return tone(73, 0.35, 7) },             // Sine2
		func() []float64 { return vibrato(55, 110, 25, 0.30, 8) }, // FM1
		func() []float64 { return vibrato(65, 130, 30, 0.30, 8) }, // FM2
		func() []float64 { return noise(0.20, 14) },               // Noise1
		func() []float64 { return noise(0.30, 8) },                // Noise2
		func() []float64 { return sweep(40, 160, 0.35, 6) },       // Sweep1
		func() []float64 { return sweep(160, 40, 0.35, 6) },       // Sweep2
	}
}

func leadRecipes() [sequencer.PadsPerGroup]func() []float64 {
	return [sequencer.PadsPerGroup]func() []float64{
		func() []float64 { return square(262, 0.25, 9) },                           // Lead1 (C4)
		func() []float64 { return square(330, 0.25, 9) },                           // Lead2 (E4)
		func() []float64 { return saw(392, 0.10, 28) },                             // Arp1 (G4)
		func() []float64 { return saw(523, 0.10, 28) },                             // Arp2 (C5)
		func() []float64 { return mix(tone(262, 0.50, 4), tone(264, 0.50, 4)) },    // Pad1
		func() []float64 { return mix(tone(330, 0.50, 4), tone(332, 0.50, 4)) },    // Pad2
		func() []float64 { return mix(saw(196, 0.45, 5), saw(197, 0.45, 5)) },      // Strings1
		func() []float64 { return mix(saw(247, 0.45, 5), saw(248, 0.45, 5)) },      // Strings2
		func() []float64 { return square(294, 0.30, 7) },                           // Brass1
		func() []float64 { return square(370, 0.30, 7) },                           // Brass2
		func() []float64 { return mix(tone(262, 0.40, 6), tone(392, 0.40, 6)) },    // Choir1
		func() []float64 { return mix(tone(330, 0.40, 6), tone(494, 0.40, 6)) },    // Choir2
		func() []float64 { return mix(tone(262, 0.35, 6), tone(524, 0.35, 6)) },    // Organ1
		func() []float64 { return mix(tone(330, 0.35, 6), tone(660, 0.35, 6)) },    // Organ2
		func() []float64 { return mix(tone(262, 0.25, 12), tone(786, 0.10, 35)) },  // Piano1
		func() []float64 { return mix(tone(330, 0.25, 12), tone(990, 0.10, 35)) },  // Piano2
	}
}

func vocalRecipes() [sequencer.PadsPerGroup]func() []float64 {
	return [sequencer.PadsPerGroup]func() []float64{
		func() []float64 { return vibrato(220, 6, 8, 0.40, 5) },                 // Vocal1
		func() []float64 { return vibrato(277, 6, 9, 0.40, 5) },                 // Vocal2
		func() []float64 { return vibrato(220, 6, 8, 0.08, 30) },                // Chop1
		func() []float64 { return vibrato(277, 6, 9, 0.08, 30) },                // Chop2
		func() []float64 { return mix(tone(180, 0.30, 7), tone(720, 0.30, 12)) }, // Voice1
		func() []float64 { return mix(tone(230, 0.30, 7), tone(920, 0.30, 12)) }, // Voice2
		func() []float64 { return mix(square(140, 0.12, 25), noise(0.12, 30)) },  // Speak1
		func() []float64 { return mix(square(180, 0.12, 25), noise(0.12, 30)) },  // Speak2
		func() []float64 { return noise(0.35, 7) },                              // Breath1
		func() []float64 { return noise(0.50, 5) },                              // Breath2
		func() []float64 { return sweep(800, 200, 0.10, 20) },                   // Scratch1
		func() []float64 { return sweep(200, 800, 0.10, 20) },                   // Scratch2
		func() []float64 { return reverse(sweep(120, 40, 0.25, 10)) },           // Reverse1
		func() []float64 { return reverse(noise(0.30, 8)) },                     // Reverse2
		func() []float64 { return echo(tone(330, 0.10, 30), 4, 0.15, 0.55) },    // Echo1
		func() []float64 { return echo(tone(440, 0.10, 30), 4, 0.15, 0.55) },    // Echo2
	}
}
