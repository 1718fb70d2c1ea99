// SPDX-License-Identifier: EPL-2.0

package oxidation

import (
	"fmt"
	"sync"
	"time"

	"github.com/ik5/oxidizer/audio"
)

// seedStride separates the per-channel noise seeds. Any odd constant that
// spreads nearby seeds apart works; this is the 32-bit golden ratio.
const seedStride = 0x9E3779B9

// Pipeline runs the full oxidation sequence over a decoded buffer:
// cascaded low-pass filtering, noise synthesis, then mixing with
// saturation, independently per channel.
type Pipeline struct {
	params Params
}

// New validates params and builds a pipeline. Invalid configuration is
// rejected here, before any sample is touched.
func New(params Params) (*Pipeline, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{params: params}, nil
}

// Params returns the pipeline's immutable configuration.
func (p *Pipeline) Params() Params { return p.params }

// Run processes in and returns a new buffer; in is left untouched. Channels
// have no data dependency on each other, so each one is processed on its own
// goroutine and joined before assembly. The output is tagged with the
// configured sample rate (input rate when zero) without resampling; playing
// a mismatched rate gives the deliberate slowed-down-tape artifact.
func (p *Pipeline) Run(in *audio.Buffer) (*audio.Buffer, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("input signal: %w", err)
	}

	outRate := p.params.SampleRate
	if outRate == 0 {
		outRate = in.Rate
	}

	seed := p.params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := &audio.Buffer{
		Data: make([][]float32, in.Channels()),
		Rate: outRate,
	}

	var wg sync.WaitGroup
	for ch := range in.Data {
		ch := ch
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Data[ch] = p.processChannel(in.Data[ch], in.Rate, seed+int64(ch)*seedStride)
		}()
	}
	wg.Wait()

	if p.params.Normalize {
		out.Normalize(normalizePeak)
	}

	return out, nil
}

// processChannel runs the per-channel stage sequence: filter cascade, then
// noise synthesis and mixing sample by sample. Filter and generator state
// live only for this call; nothing is shared across channels or runs.
func (p *Pipeline) processChannel(src []float32, inRate int, seed int64) []float32 {
	work := make([]float32, len(src))
	copy(work, src)

	// Each pass starts from silence and feeds the previous pass's output,
	// compounding the roll-off.
	for pass := 0; pass < p.params.Passes; pass++ {
		filter := NewFilter(p.params.Level, inRate)
		filter.Apply(work)
	}

	gen := p.params.Texture.NewGenerator(seed)
	mixer := NewMixer(p.params.Intensity)
	for i, s := range work {
		work[i] = mixer.Mix(s, gen.Next())
	}

	return work
}
