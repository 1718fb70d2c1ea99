// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes interleaved 16-bit PCM samples as a PCM WAV file at
// sampleRate with the given channel count. The writer must support seeking
// so the header sizes can be patched after the data chunk is written;
// an *os.File qualifies.
func Encode(w io.WriteSeeker, sampleRate, channels int, pcm []int16) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, channels, 1)

	format := &goaudio.Format{
		NumChannels: channels,
		SampleRate:  sampleRate,
	}

	// Feed the encoder in chunks to keep the int conversion buffer small
	// for long signals.
	const chunkFrames = 8192
	chunkSize := chunkFrames * channels

	data := make([]int, 0, min(len(pcm), chunkSize))
	for start := 0; start < len(pcm); start += chunkSize {
		end := min(start+chunkSize, len(pcm))

		data = data[:end-start]
		for i, s := range pcm[start:end] {
			data[i] = int(s)
		}

		buf := &goaudio.IntBuffer{
			Format:         format,
			Data:           data,
			SourceBitDepth: 16,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
