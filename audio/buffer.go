// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Buffer holds a fully decoded signal as per-channel sample slices plus its
// sample rate. Samples are float32 amplitudes nominally in [-1, 1]. All
// channels hold the same number of samples.
type Buffer struct {
	// Data is indexed [channel][sample].
	Data [][]float32
	// Rate is the sample rate in Hz.
	Rate int
}

// NewBuffer allocates a zeroed buffer with the given shape.
func NewBuffer(rate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
	}

	return &Buffer{Data: data, Rate: rate}
}

// Deinterleave builds a buffer from interleaved samples, e.g. [L R L R ...]
// for stereo. The input length must be a multiple of channels.
func Deinterleave(samples []float32, rate, channels int) (*Buffer, error) {
	if channels < 1 || channels > 2 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInterleaveMismatch
	}

	frames := len(samples) / channels
	buf := NewBuffer(rate, channels, frames)
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			buf.Data[ch][f] = samples[f*channels+ch]
		}
	}

	return buf, nil
}

// FromSource drains src completely and collects it into a Buffer.
// The source's own sample rate and channel count are kept.
func FromSource(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 || channels > 2 {
		return nil, ErrInvalidChannels
	}

	read := make([]float32, 0, src.SampleRate()*channels)
	tmp := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			read = append(read, tmp[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	// A decoder may end mid-frame; drop the trailing partial frame.
	read = read[:len(read)-len(read)%channels]

	return Deinterleave(read, src.SampleRate(), channels)
}

// Channels returns the number of channels.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Validate checks the buffer invariants: positive sample rate, 1 or 2
// channels, equal sample counts across channels.
func (b *Buffer) Validate() error {
	if b.Rate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(b.Data) < 1 || len(b.Data) > 2 {
		return ErrInvalidChannels
	}

	frames := len(b.Data[0])
	for _, ch := range b.Data[1:] {
		if len(ch) != frames {
			return ErrChannelLengthSkew
		}
	}

	return nil
}

// Interleaved flattens the buffer into [L R L R ...] order for encoders.
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			out[f*channels+ch] = b.Data[ch][f]
		}
	}

	return out
}

// Peak returns the largest absolute sample value across all channels.
// Non-finite samples are ignored.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, ch := range b.Data {
		for _, s := range ch {
			a := float32(math.Abs(float64(s)))
			if a > peak && !math.IsInf(float64(a), 1) && !math.IsNaN(float64(a)) {
				peak = a
			}
		}
	}

	return peak
}

// Normalize scales every channel by the same factor so the loudest sample
// lands at targetPeak. Joint scaling keeps the channel balance intact.
// A silent buffer is left untouched.
func (b *Buffer) Normalize(targetPeak float32) {
	peak := b.Peak()
	if peak <= 0 {
		return
	}

	scale := targetPeak / peak
	for _, ch := range b.Data {
		for i := range ch {
			ch[i] *= scale
		}
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Data: make([][]float32, len(b.Data)),
		Rate: b.Rate,
	}
	for ch := range b.Data {
		out.Data[ch] = make([]float32, len(b.Data[ch]))
		copy(out.Data[ch], b.Data[ch])
	}

	return out
}
