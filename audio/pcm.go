package audio

// encodePCM converts rendered float samples to 16-bit LE PCM bytes.
func encodePCM(samples []float64) []byte {
	out := make([]byte, len(samples)*2)
	for i, v := range samples {
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		s := int16(v * 32767)
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	return out
}

// ScaleGain returns a copy of 16-bit LE PCM scaled by gain. The copy keeps
// fire-and-forget playback from sharing buffers with the caller.
func ScaleGain(data []byte, gain float32) []byte {
	out := make([]byte, len(data)&^1)
	for i := 0; i+1 < len(data); i += 2 {
		s := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		v := float32(s) * gain
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		sv := int16(v)
		out[i] = byte(sv)
		out[i+1] = byte(sv >> 8)
	}
	return out
}
