// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives shared by the oxidizer pipeline
// and the format decoders.
//
// # Source Interface
//
// The Source interface is the streaming side of the system. Every format
// decoder returns one:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]: 0.0 is silence,
// ±1.0 is full scale. ReadSamples returns io.EOF when the stream ends.
//
// # Buffer
//
// The oxidation stages are batch transforms, so a Source is first drained
// into a Buffer, which holds each channel as its own slice plus the sample
// rate:
//
//	buf, err := audio.FromSource(src)
//	// buf.Data[0] is the left channel, buf.Data[1] the right
//
// Interleaved() flattens a Buffer back into encoder order, and Normalize()
// applies joint peak normalization across all channels.
//
// # Downmix
//
// Downmix wraps any Source and averages its channels to mono:
//
//	mono := audio.NewDownmix(src)
//
// # Format Registry
//
// The registry maps format keys to decoders, so callers can pick a decoder
// from a file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
package audio
