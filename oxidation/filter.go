// SPDX-License-Identifier: EPL-2.0

package oxidation

import "math"

// Filter is a one-pole low-pass (leaky integrator) over one channel:
//
//	y[n] = y[n-1] + alpha * (x[n] - y[n-1])
//
// alpha is derived from the level's cutoff frequency and the input sample
// rate via the impulse-invariant mapping alpha = 1 - exp(-2*pi*fc/rate).
// The previous-output state starts at zero, matching the classic leaky
// integrator (the first samples ramp up from silence instead of thumping).
//
// A Filter owns the running state for exactly one channel and must be used
// strictly in sample order. For steeper roll-off, apply a fresh Filter over
// the previous pass's output; each extra pass adds ~6 dB/octave.
type Filter struct {
	alpha float32
	prev  float32
}

// NewFilter builds a filter for one channel at the given input sample rate.
func NewFilter(level Level, sampleRate int) *Filter {
	return &Filter{alpha: float32(alphaFor(level.Cutoff(), sampleRate))}
}

// alphaFor maps a cutoff frequency to the recurrence coefficient. A cutoff
// at or above Nyquist degenerates toward alpha = 1, i.e. passthrough.
func alphaFor(cutoff float64, sampleRate int) float64 {
	return 1 - math.Exp(-2*math.Pi*cutoff/float64(sampleRate))
}

// Alpha reports the recurrence coefficient, mostly useful for tests.
func (f *Filter) Alpha() float32 { return f.alpha }

// Reset clears the running state back to silence.
func (f *Filter) Reset() { f.prev = 0 }

// ProcessSample advances the recurrence by one sample.
func (f *Filter) ProcessSample(x float32) float32 {
	f.prev += f.alpha * (x - f.prev)
	return f.prev
}

// Apply runs one filter pass over samples in place. An empty slice is a
// no-op. The filter is a pure function of its inputs and parameters: no
// randomness, so identical input always yields identical output.
func (f *Filter) Apply(samples []float32) {
	for i, x := range samples {
		samples[i] = f.ProcessSample(x)
	}
}
