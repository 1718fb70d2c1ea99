// SPDX-License-Identifier: EPL-2.0

// Command oxidize degrades an audio file on purpose: low-pass filtering plus
// a colored noise floor, written out as a 16-bit PCM WAV.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ik5/oxidizer"
	"github.com/ik5/oxidizer/audio"
	"github.com/ik5/oxidizer/formats/aiff"
	"github.com/ik5/oxidizer/formats/mp3"
	"github.com/ik5/oxidizer/formats/vorbis"
	"github.com/ik5/oxidizer/formats/wav"
	"github.com/ik5/oxidizer/oxidation"
	"github.com/ik5/oxidizer/utils"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Input       string  `arg:"" optional:"" type:"existingfile" help:"Audio file to oxidize (wav, mp3, ogg, aiff)"`
	Output      string  `short:"o" default:"output.wav" help:"Path of the WAV file to write"`
	Level       string  `short:"l" default:"deep" enum:"clear,deep,muffled" help:"Oxidation level: clear, deep or muffled"`
	Noise       string  `short:"n" default:"brown" enum:"brown,white" help:"Noise texture: brown or white"`
	Intensity   float64 `short:"i" default:"0.05" help:"Noise and saturation amount, 0.0 to 1.0"`
	Passes      int     `short:"p" default:"1" help:"Filter passes; each extra pass stacks the roll-off"`
	SampleRate  int     `short:"s" default:"44100" help:"Output sample rate tag; no resampling is performed"`
	Seed        int64   `default:"0" help:"Noise seed for reproducible output; 0 picks one from the clock"`
	Mono        bool    `help:"Downmix to mono before processing"`
	NoNormalize bool    `help:"Skip peak normalization of the output"`
	Version     bool    `short:"v" help:"Show version information"`
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("oxidize"),
		kong.Description("An audio transformer that makes everything sound rusty and worn"),
		kong.UsageOnError(),
	)

	if cli.Version {
		fmt.Printf("oxidize %s\n", version)
		os.Exit(0)
	}

	if cli.Input == "" {
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	log := newLogger()
	if err := run(cli, log); err != nil {
		log.Error("oxidation failed", "error", err)
		os.Exit(1)
	}
}

func run(cli *CLI, log *slog.Logger) error {
	level, err := oxidation.ParseLevel(cli.Level)
	if err != nil {
		return err
	}
	texture, err := oxidation.ParseTexture(cli.Noise)
	if err != nil {
		return err
	}

	params := oxidation.Params{
		Level:      level,
		Texture:    texture,
		Intensity:  cli.Intensity,
		Passes:     cli.Passes,
		SampleRate: cli.SampleRate,
		Seed:       cli.Seed,
		Normalize:  !cli.NoNormalize,
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(cli.Input)), ".")
	registry := newRegistry()
	dec, ok := registry.Get(ext)
	if !ok {
		return fmt.Errorf("unsupported input format %q (supported: %s)",
			ext, strings.Join(registry.Formats(), ", "))
	}

	in, err := os.Open(cli.Input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", cli.Input, err)
	}
	defer src.Close()

	var input audio.Source = src
	if cli.Mono {
		input = audio.NewDownmix(src)
	}

	log.Info("oxidizing",
		"input", cli.Input,
		"level", level.String(),
		"noise", texture.String(),
		"intensity", cli.Intensity,
		"passes", cli.Passes,
	)

	out, err := oxidizer.Oxidize(input, params)
	if err != nil {
		return err
	}

	// The pipeline has fully succeeded; only now touch the output path, and
	// clean it up if encoding dies halfway so no broken file is left behind.
	pcm := utils.Float32SliceToInt16(out.Interleaved())

	outFile, err := os.Create(cli.Output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := wav.Encode(outFile, out.Rate, out.Channels(), pcm); err != nil {
		outFile.Close()
		os.Remove(cli.Output)
		return fmt.Errorf("encoding output: %w", err)
	}
	if err := outFile.Close(); err != nil {
		os.Remove(cli.Output)
		return fmt.Errorf("closing output: %w", err)
	}

	log.Info("wrote oxidized audio",
		"output", cli.Output,
		"frames", out.Frames(),
		"rate", out.Rate,
		"channels", out.Channels(),
	)

	return nil
}
