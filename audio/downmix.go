// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmix wraps a Source and averages its channels into a single mono
// stream. A mono source passes through unchanged.
type Downmix struct {
	src Source
	tmp []float32
}

func NewDownmix(src Source) *Downmix {
	return &Downmix{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (d *Downmix) SampleRate() int { return d.src.SampleRate() }
func (d *Downmix) Channels() int   { return 1 }
func (d *Downmix) BufSize() int    { return d.src.BufSize() }

func (d *Downmix) Close() error {
	if err := d.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples, one per source frame.
func (d *Downmix) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := d.src.Channels()
	if channels == 1 {
		return d.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(d.tmp) < needed {
		d.tmp = make([]float32, needed)
	}

	n, err := d.src.ReadSamples(d.tmp[:needed])
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	gain := 1.0 / float32(channels)
	for f := 0; f < frames; f++ {
		sum := float32(0)
		for c := 0; c < channels; c++ {
			sum += d.tmp[f*channels+c]
		}
		dst[f] = sum * gain
	}

	return frames, err
}
