// SPDX-License-Identifier: EPL-2.0

// Package oxidation implements the signal degradation core: a cascaded
// one-pole low-pass filter, colored noise generators, and an intensity-scaled
// mixer with soft saturation, orchestrated per channel by Pipeline.
//
// # Stages
//
// For each channel, independently:
//
//  1. Filter the samples with a one-pole low-pass, repeated Passes times.
//     The level (clear/deep/muffled) picks the cutoff frequency.
//  2. Generate a noise stream of equal length (brown or white texture),
//     with its own seeded random source per channel.
//  3. Mix: out = saturate(filtered + intensity*noise).
//
// The per-channel state (filter memory, noise walk) is created at pipeline
// start and discarded at the end; channels never share it, which keeps the
// stereo noise floor uncorrelated.
//
// # Usage
//
//	params := oxidation.Params{
//	    Level:     oxidation.LevelDeep,
//	    Texture:   oxidation.TextureBrown,
//	    Intensity: 0.05,
//	    Passes:    1,
//	    Seed:      42,
//	}
//	pipe, err := oxidation.New(params)
//	if err != nil {
//	    // invalid configuration, nothing was processed
//	}
//	out, err := pipe.Run(buf)
//
// # Determinism
//
// With a nonzero Seed the whole run is reproducible bit for bit. The filter
// itself is always deterministic; only the noise generators consume
// randomness. Seed zero pulls entropy from the clock.
package oxidation
