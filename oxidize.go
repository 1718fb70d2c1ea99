// SPDX-License-Identifier: EPL-2.0

package oxidizer

import (
	"fmt"

	"github.com/ik5/oxidizer/audio"
	"github.com/ik5/oxidizer/oxidation"
	"github.com/ik5/oxidizer/utils"
)

// Oxidize drains src into memory and runs the full degradation pipeline over
// it: cascaded low-pass filtering, per-channel noise synthesis, and mixing
// with soft saturation.
//
// The configuration is validated before the source is read, so an invalid
// Params never consumes input. The returned buffer is tagged with
// params.SampleRate (the source rate when zero); no resampling happens.
//
// Example:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	out, err := oxidizer.Oxidize(src, oxidation.Params{
//	    Level:     oxidation.LevelDeep,
//	    Texture:   oxidation.TextureBrown,
//	    Intensity: 0.05,
//	    Passes:    1,
//	})
func Oxidize(src audio.Source, params oxidation.Params) (*audio.Buffer, error) {
	pipe, err := oxidation.New(params)
	if err != nil {
		return nil, err
	}

	in, err := audio.FromSource(src)
	if err != nil {
		return nil, fmt.Errorf("collecting input signal: %w", err)
	}

	out, err := pipe.Run(in)
	if err != nil {
		return nil, fmt.Errorf("processing signal: %w", err)
	}

	return out, nil
}

// OxidizeToPCM16 is a convenience wrapper around Oxidize that converts the
// processed signal to interleaved 16-bit PCM, ready for the WAV encoder.
// It returns the samples and the output sample rate; the channel count is
// unchanged from src.
func OxidizeToPCM16(src audio.Source, params oxidation.Params) ([]int16, int, error) {
	out, err := Oxidize(src, params)
	if err != nil {
		return nil, 0, err
	}

	return utils.Float32SliceToInt16(out.Interleaved()), out.Rate, nil
}
