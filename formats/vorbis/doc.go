// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into the pipeline's Source
// interface using github.com/jfreymuth/oggvorbis, which emits interleaved
// float32 samples directly.
package vorbis
