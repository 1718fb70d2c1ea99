// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/oxidizer/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Decode AIFF to audio source
	decoder := aiff.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_errorHandling shows the error for invalid AIFF data.
func ExampleDecoder_Decode_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an aiff file"))

	_, err := aiff.Decoder{}.Decode(invalidData)
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Detected: Not a valid AIFF file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid AIFF file
}
