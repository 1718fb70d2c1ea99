// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/oxidizer/formats/wav"
)

// Example_roundTrip shows encoding 16-bit PCM and decoding it back.
func Example_roundTrip() {
	f, err := os.CreateTemp("", "roundtrip-*.wav")
	if err != nil {
		fmt.Printf("temp file error: %v\n", err)
		return
	}
	defer os.Remove(f.Name())

	// Encode to WAV (in real code the target is the output file)
	original := []int16{-1000, -500, 0, 500, 1000}
	if err := wav.Encode(f, 8000, 1, original); err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}
	f.Close()

	// Decode back
	in, err := os.Open(f.Name())
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	buf := make([]float32, len(original))
	n, _ := src.ReadSamples(buf)

	// Convert back to int16 for comparison
	recovered := make([]int16, n)
	for i := 0; i < n; i++ {
		recovered[i] = int16(buf[i] * 32768.0)
	}

	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Original:  %v\n", original)
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Sample rate: 8000 Hz
	// Original:  [-1000 -500 0 500 1000]
	// Recovered: [-1000 -500 0 500 1000]
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	// Try to decode non-WAV data
	invalidData := bytes.NewReader([]byte("This is not a WAV file"))

	_, err := wav.Decoder{}.Decode(invalidData)
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}
