// SPDX-License-Identifier: EPL-2.0

package oxidation

import "math"

// normalizePeak is the target peak for the optional final normalization
// stage, leaving a little headroom below full scale.
const normalizePeak = 0.95

// Mixer blends filtered signal with noise and soft-saturates the result.
// One intensity knob drives both halves: it scales the injected noise and it
// lowers the knee where saturation starts to bite. The two effects are
// independent functions of the same parameter:
//
//	mixed = signal + intensity * noise
//	knee  = 1 - intensity/2
//
// Below the knee the mixer is bit-exact passthrough, so at intensity zero
// an in-range signal comes out untouched. Above the knee the remaining
// headroom is compressed through tanh, keeping the output magnitude within
// 1.0 without the crunch of a hard clip.
type Mixer struct {
	intensity float32
	knee      float32
}

// NewMixer builds a mixer. Intensity must already be validated to [0, 1].
func NewMixer(intensity float64) *Mixer {
	return &Mixer{
		intensity: float32(intensity),
		knee:      float32(1 - intensity/2),
	}
}

// Mix combines one filtered sample with one noise sample and returns a
// saturated output sample with magnitude at most 1.0.
func (m *Mixer) Mix(signal, noise float32) float32 {
	return m.saturate(signal + m.intensity*noise)
}

// saturate applies the soft knee. Non-finite inputs are flushed to valid
// amplitudes rather than propagated: NaN becomes silence, infinities pin to
// full scale.
func (m *Mixer) saturate(x float32) float32 {
	x64 := float64(x)
	if math.IsNaN(x64) {
		return 0
	}
	if math.IsInf(x64, 1) {
		return 1
	}
	if math.IsInf(x64, -1) {
		return -1
	}

	mag := float32(math.Abs(x64))
	if mag <= m.knee {
		return x
	}

	headroom := 1 - m.knee
	var out float32
	if headroom <= 0 {
		// Knee at full scale: nothing left to bend into, clamp hard.
		out = 1
	} else {
		out = m.knee + headroom*float32(math.Tanh(float64((mag-m.knee)/headroom)))
	}

	return float32(math.Copysign(float64(out), x64))
}
