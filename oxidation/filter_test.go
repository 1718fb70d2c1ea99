package oxidation

import (
	"math"
	"testing"
)

func TestFilter_GeometricApproach(t *testing.T) {
	t.Parallel()

	// A constant input converges geometrically toward the input value with
	// rate alpha: y[n] = 1 - (1-alpha)^(n+1) for unit input from rest.
	f := NewFilter(LevelMuffled, 44100)
	alpha := float64(f.Alpha())

	prevGap := 1.0
	for n := 0; n < 200; n++ {
		y := float64(f.ProcessSample(1.0))
		want := 1.0 - math.Pow(1.0-alpha, float64(n+1))
		if math.Abs(y-want) > 1e-3 {
			t.Fatalf("y[%d] = %v, want %v", n, y, want)
		}

		gap := 1.0 - y
		if gap > prevGap {
			t.Fatalf("y[%d]: gap to target grew from %v to %v", n, prevGap, gap)
		}
		prevGap = gap
	}
}

func TestFilter_NoOvershoot(t *testing.T) {
	t.Parallel()

	// Output of the recurrence is a convex blend of its own state and the
	// input, so it can never leave the range spanned by the initial state
	// (zero) and the input values.
	input := []float32{0.5, 0.9, -0.3, 0.7, -0.8, 0.1, 1.0, -1.0, 0.2}

	for _, level := range []Level{LevelClear, LevelDeep, LevelMuffled} {
		f := NewFilter(level, 44100)
		samples := make([]float32, len(input))
		copy(samples, input)
		f.Apply(samples)

		for i, y := range samples {
			if y > 1.0 || y < -1.0 {
				t.Errorf("level %v: output[%d] = %v exceeds input range", level, i, y)
			}
		}
	}
}

func TestFilter_CascadeIncreasesRollOff(t *testing.T) {
	t.Parallel()

	// Alternating full-scale samples sit at the Nyquist frequency, the
	// worst case for a low pass. Each extra pass must remove more of that
	// energy, never less.
	const frames = 4096
	nyquist := make([]float32, frames)
	for i := range nyquist {
		if i%2 == 0 {
			nyquist[i] = 1.0
		} else {
			nyquist[i] = -1.0
		}
	}

	rms := func(samples []float32) float64 {
		var sum float64
		for _, s := range samples {
			sum += float64(s) * float64(s)
		}
		return math.Sqrt(sum / float64(len(samples)))
	}

	prev := rms(nyquist)
	work := make([]float32, frames)
	copy(work, nyquist)

	for pass := 1; pass <= 4; pass++ {
		f := NewFilter(LevelDeep, 44100)
		f.Apply(work)

		got := rms(work)
		if got >= prev {
			t.Fatalf("pass %d: rms = %v, want below previous pass %v", pass, got, prev)
		}
		prev = got
	}
}

func TestFilter_Deterministic(t *testing.T) {
	t.Parallel()

	input := []float32{0.3, -0.4, 0.5, -0.6, 0.7}

	a := make([]float32, len(input))
	b := make([]float32, len(input))
	copy(a, input)
	copy(b, input)

	NewFilter(LevelDeep, 44100).Apply(a)
	NewFilter(LevelDeep, 44100).Apply(b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("filter is not deterministic at sample %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	t.Parallel()

	f := NewFilter(LevelClear, 44100)
	f.Apply(nil)
	f.Apply([]float32{})
	// No panic is the assertion.
}

func TestFilter_AlphaOrdering(t *testing.T) {
	t.Parallel()

	clear := NewFilter(LevelClear, 44100).Alpha()
	deep := NewFilter(LevelDeep, 44100).Alpha()
	muffled := NewFilter(LevelMuffled, 44100).Alpha()

	if !(clear > deep && deep > muffled) {
		t.Errorf("alpha not ordered with cutoff: clear=%v deep=%v muffled=%v", clear, deep, muffled)
	}

	if muffled <= 0 || clear >= 1 {
		t.Errorf("alpha outside (0,1): clear=%v muffled=%v", clear, muffled)
	}
}

func TestFilter_Reset(t *testing.T) {
	t.Parallel()

	f := NewFilter(LevelDeep, 44100)
	first := f.ProcessSample(1.0)

	f.Reset()
	again := f.ProcessSample(1.0)

	if first != again {
		t.Errorf("ProcessSample after Reset = %v, want %v", again, first)
	}
}
