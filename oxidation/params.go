// SPDX-License-Identifier: EPL-2.0

package oxidation

import (
	"fmt"
	"strings"
)

// Level selects how aggressively the degradation filter darkens the signal.
// Each level maps to a low-pass cutoff frequency.
type Level int

const (
	// LevelClear keeps most of the spectrum. Warm and clean.
	LevelClear Level = iota
	// LevelDeep noticeably reduces high frequencies. Deep and mellow tone.
	LevelDeep
	// LevelMuffled is an extreme low pass. Very dark and bass-heavy.
	LevelMuffled
)

// Cutoff returns the filter cutoff frequency in Hz for the level.
func (l Level) Cutoff() float64 {
	switch l {
	case LevelClear:
		return 14000
	case LevelDeep:
		return 6000
	default:
		return 2000
	}
}

func (l Level) String() string {
	switch l {
	case LevelClear:
		return "clear"
	case LevelDeep:
		return "deep"
	case LevelMuffled:
		return "muffled"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a token like "deep" into a Level.
// Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "clear":
		return LevelClear, nil
	case "deep":
		return LevelDeep, nil
	case "muffled":
		return LevelMuffled, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Texture selects the spectral shape of the injected noise.
type Texture int

const (
	// TextureBrown is a leaky random walk: power falls ~6 dB/octave,
	// like distant rumble.
	TextureBrown Texture = iota
	// TextureWhite is flat-spectrum radio static.
	TextureWhite
)

func (t Texture) String() string {
	switch t {
	case TextureBrown:
		return "brown"
	case TextureWhite:
		return "white"
	default:
		return fmt.Sprintf("texture(%d)", int(t))
	}
}

// ParseTexture converts a token like "brown" into a Texture.
// Matching is case-insensitive.
func ParseTexture(s string) (Texture, error) {
	switch strings.ToLower(s) {
	case "brown":
		return TextureBrown, nil
	case "white":
		return TextureWhite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTexture, s)
	}
}

// Params is the immutable configuration for one pipeline run. Build it once
// from parsed CLI input and validate before processing; it is safe to share
// across the per-channel workers.
type Params struct {
	// Level selects the degradation filter cutoff.
	Level Level
	// Texture selects the noise generator algorithm.
	Texture Texture
	// Intensity in [0.0, 1.0] scales both the injected noise floor and the
	// aggressiveness of the saturation stage.
	Intensity float64
	// Passes is the number of cascaded filter applications, at least 1.
	Passes int
	// SampleRate tags the output signal. Zero keeps the input rate. No
	// resampling is performed either way: a mismatched rate plays back with
	// a tape-style pitch/speed shift.
	SampleRate int
	// Seed makes the noise generators reproducible. Zero draws a seed from
	// the clock at run time.
	Seed int64
	// Normalize rescales the finished signal so its peak lands at 0.95.
	Normalize bool
}

// Validate rejects any configuration the pipeline must not run with.
func (p Params) Validate() error {
	if p.Passes < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPasses, p.Passes)
	}
	// NaN compares false against everything, so spell the valid range out.
	if !(p.Intensity >= 0.0 && p.Intensity <= 1.0) {
		return fmt.Errorf("%w: got %g", ErrInvalidIntensity, p.Intensity)
	}
	if p.SampleRate < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, p.SampleRate)
	}
	if _, err := ParseLevel(p.Level.String()); err != nil {
		return err
	}
	if _, err := ParseTexture(p.Texture.String()); err != nil {
		return err
	}

	return nil
}
