// SPDX-License-Identifier: EPL-2.0

// Package oxidizer degrades clean audio on purpose: it darkens the signal
// with a cascaded one-pole low-pass filter and layers seeded colored noise
// on top, so everything comes out sounding rusty and worn.
//
// # Supported Formats
//
// Input decoders live under formats/:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always 16-bit PCM WAV, written by formats/wav.Encode.
//
// # Quick Start
//
//	file, _ := os.Open("clean.mp3")
//	src, _ := mp3.Decoder{}.Decode(file)
//
//	pcm16, rate, err := oxidizer.OxidizeToPCM16(src, oxidation.Params{
//	    Level:     oxidation.LevelDeep,
//	    Texture:   oxidation.TextureBrown,
//	    Intensity: 0.05,
//	    Passes:    1,
//	})
//
//	out, _ := os.Create("rusty.wav")
//	wav.Encode(out, rate, src.Channels(), pcm16)
//
// # Processing Model
//
// The pipeline is batch-oriented: the whole input is decoded into an
// audio.Buffer first, then each channel runs through filter, noise, and
// mixer stages on its own goroutine. Channels never share state: the left
// and right noise floors come from independently seeded generators, which
// keeps the stereo image wide.
//
// # Knobs
//
//   - Level (clear/deep/muffled) picks the low-pass cutoff.
//   - Texture (brown/white) picks the noise spectrum.
//   - Intensity scales the noise floor and the saturation aggressiveness.
//   - Passes stacks the filter for steeper roll-off.
//   - SampleRate tags the output without resampling; a mismatched tag plays
//     back with a tape-style pitch/speed shift, which is the point.
//   - Seed makes runs reproducible.
//
// # Error Handling
//
// Configuration problems (passes < 1, intensity out of [0,1], unknown
// tokens) are rejected up front via sentinel errors in the oxidation
// package; use errors.Is to test for them. Decode and encode failures are
// wrapped and surfaced as ordinary I/O errors.
package oxidizer
