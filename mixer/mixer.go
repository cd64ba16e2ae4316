// Package mixer computes the scalar playback gain for triggered sounds.
// It owns no audio processing; the output backend is parameterized with
// one gain value per trigger.
package mixer

// NumGroups matches the sequencer's group count.
const NumGroups = 4

// GroupNames are the display names for the four instrument groups.
var GroupNames = [NumGroups]string{"DRUMS", "BASS", "LEAD", "VOCAL"}

// Mixer holds master and per-group volume and mute state. Volumes stay in
// [0,1]; muting is independent of volume so unmuting restores the old
// level. Writers ignore invalid group indices, readers return a neutral
// default for them.
type Mixer struct {
	masterVolume float32
	masterMuted  bool
	groupVolume  [NumGroups]float32
	groupMuted   [NumGroups]bool
}

// New returns a mixer at the default levels: master 0.7, groups 0.8.
func New() *Mixer {
	m := &Mixer{masterVolume: 0.7}
	for g := range m.groupVolume {
		m.groupVolume[g] = 0.8
	}
	return m
}

// EffectiveGain returns the gain for a sound triggered on the given group:
// zero when the master or the group is muted, otherwise the product of
// master and group volume.
func (m *Mixer) EffectiveGain(group int) float32 {
	if group < 0 || group >= NumGroups {
		return 0
	}
	if m.masterMuted || m.groupMuted[group] {
		return 0
	}
	return m.masterVolume * m.groupVolume[group]
}

// AdjustMasterVolume adds delta to the master volume, clamped to [0,1].
func (m *Mixer) AdjustMasterVolume(delta float32) {
	m.masterVolume = clamp01(m.masterVolume + delta)
}

// MasterVolume returns the master level.
func (m *Mixer) MasterVolume() float32 {
	return m.masterVolume
}

// ToggleMasterMute flips the master mute without touching the volume.
func (m *Mixer) ToggleMasterMute() {
	m.masterMuted = !m.masterMuted
}

// MasterMuted reports the master mute state.
func (m *Mixer) MasterMuted() bool {
	return m.masterMuted
}

// AdjustGroupVolume adds delta to a group's volume, clamped to [0,1].
// Ignored for invalid groups.
func (m *Mixer) AdjustGroupVolume(group int, delta float32) {
	if group < 0 || group >= NumGroups {
		return
	}
	m.groupVolume[group] = clamp01(m.groupVolume[group] + delta)
}

// GroupVolume returns a group's level, or 0 for an invalid group.
func (m *Mixer) GroupVolume(group int) float32 {
	if group < 0 || group >= NumGroups {
		return 0
	}
	return m.groupVolume[group]
}

// ToggleGroupMute flips a group's mute. Ignored for invalid groups.
func (m *Mixer) ToggleGroupMute(group int) {
	if group < 0 || group >= NumGroups {
		return
	}
	m.groupMuted[group] = !m.groupMuted[group]
}

// GroupMuted reports a group's mute state, false for an invalid group.
func (m *Mixer) GroupMuted(group int) bool {
	if group < 0 || group >= NumGroups {
		return false
	}
	return m.groupMuted[group]
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
