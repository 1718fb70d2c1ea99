// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrInvalidChannels    = errors.New("channel count must be 1 or 2")
	ErrChannelLengthSkew  = errors.New("all channels must hold the same number of samples")
	ErrInterleaveMismatch = errors.New("interleaved data length must be multiple of channels")
)
