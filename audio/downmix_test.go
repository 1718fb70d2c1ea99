package audio

import (
	"io"
	"math"
	"testing"
)

func TestDownmix_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	mono := NewDownmix(src)

	if mono.SampleRate() != 44100 {
		t.Errorf("Downmix.SampleRate() = %d, want 44100", mono.SampleRate())
	}
	if mono.Channels() != 1 {
		t.Errorf("Downmix.Channels() = %d, want 1", mono.Channels())
	}
}

func TestDownmix_AveragesChannels(t *testing.T) {
	t.Parallel()

	// Left channel at 0.8, right at 0.2; the average is 0.5.
	src := newMockSource(8000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.8
		}
		return 0.2
	})
	mono := NewDownmix(src)

	buf := make([]float32, 100)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Fatalf("ReadSamples() = %d frames, want 100", n)
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-0.5)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestDownmix_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 50, 0.7)
	mono := NewDownmix(src)

	buf := make([]float32, 50)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0.7 {
			t.Errorf("buf[%d] = %v, want 0.7", i, buf[i])
		}
	}
}
