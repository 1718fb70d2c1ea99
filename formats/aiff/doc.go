// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into the pipeline's Source interface.
//
// This package uses github.com/go-audio/aiff. Only 16-bit PCM files are
// supported; samples are normalized to interleaved float32 in [-1, 1].
package aiff
