// SPDX-License-Identifier: EPL-2.0

package oxidation

import (
	"math"
	"math/rand"
)

// Brown noise shaping constants. The damping keeps the random walk from
// drifting off unbounded; the gain rescales the walk so its typical peaks
// (three standard deviations) land near full scale regardless of length.
const (
	brownDamping = 0.98
	brownStep    = 0.1
)

// Generator emits one noise sample per call, unit-ish amplitude in [-1, 1].
// External intensity scaling happens in the mixer, not here. A Generator
// owns the state for exactly one channel; give each channel its own seeded
// instance so the stereo image stays wide instead of collapsing to a mono
// noise floor panned to both sides.
type Generator interface {
	Next() float32
}

// NewGenerator builds a seeded generator for the texture.
func (t Texture) NewGenerator(seed int64) Generator {
	if t == TextureWhite {
		return NewWhite(seed)
	}
	return NewBrown(seed)
}

// White produces flat-spectrum noise: i.i.d. samples drawn uniformly from
// [-1, 1). Identical seeds reproduce identical sequences.
type White struct {
	rng *rand.Rand
}

func NewWhite(seed int64) *White {
	return &White{rng: rand.New(rand.NewSource(seed))}
}

func (w *White) Next() float32 {
	return w.rng.Float32()*2 - 1
}

// Brown produces red noise by integrating white noise through a leaky
// integrator:
//
//	b[n] = damping * b[n-1] + step * white[n]
//
// Power falls ~6 dB/octave. The output is scaled by a fixed gain computed
// from the walk's steady-state standard deviation, then clamped, so the
// amplitude is comparable across runs and independent of buffer length.
type Brown struct {
	rng   *rand.Rand
	state float32
	gain  float32
}

func NewBrown(seed int64) *Brown {
	// Uniform white noise on [-1,1) has variance 1/3; the steady-state
	// variance of the damped walk is step^2 * var / (1 - damping^2).
	sigma := brownStep * math.Sqrt(1.0/3.0/(1-brownDamping*brownDamping))

	return &Brown{
		rng:  rand.New(rand.NewSource(seed)),
		gain: float32(1 / (3 * sigma)),
	}
}

func (b *Brown) Next() float32 {
	white := b.rng.Float32()*2 - 1
	b.state = brownDamping*b.state + brownStep*white

	out := b.state * b.gain
	if out > 1 {
		return 1
	}
	if out < -1 {
		return -1
	}

	return out
}
