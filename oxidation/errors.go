// SPDX-License-Identifier: EPL-2.0

package oxidation

import "errors"

// Configuration errors. Every one of these rejects a run before any sample
// is processed.
var (
	ErrInvalidPasses     = errors.New("passes must be at least 1")
	ErrInvalidIntensity  = errors.New("intensity must be within [0.0, 1.0]")
	ErrInvalidSampleRate = errors.New("output sample rate must not be negative")
	ErrUnknownLevel      = errors.New("unknown oxidation level")
	ErrUnknownTexture    = errors.New("unknown noise texture")
)
