// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding for the oxidizer pipeline.
//
// Both directions go through github.com/go-audio/wav. The decoder accepts
// PCM files at 8, 16, 24 or 32 bits and normalizes samples to float32 in
// [-1, 1]; the encoder writes 16-bit PCM, which is what the pipeline's
// output conversion produces.
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
//	err = wav.Encode(outFile, 44100, 2, pcm16)
package wav
