// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into the pipeline's Source interface.
//
// This package uses github.com/hajimehoshi/go-mp3, which always outputs
// stereo 16-bit PCM; the decoder normalizes it to interleaved float32.
package mp3
