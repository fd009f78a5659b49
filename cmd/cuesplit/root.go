package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cuesplit/config"
	"cuesplit/internal/audio"
	"cuesplit/internal/splitter"
)

const version = "1.0.0"

const versionBanner = `cuesplit {{.Version}}
Splits a cue-sheet album image into tagged per-track files.
Released under the MIT License; this is free software with no warranty.
`

func newRootCommand() *cobra.Command {
	var (
		configPath string
		flacOut    bool
		oggOut     bool
		mp3Out     bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "cuesplit [flags] <cuesheet>",
		Short: "Split a cue-sheet album image into tagged per-track files",
		Long: `cuesplit reads a cue sheet, locates the album image it references, and
splits the image into individual track files named and tagged from the
cue sheet metadata. Decoding and encoding are delegated to the flac,
metaflac, oggenc, and lame binaries.

Output files land under <artist>/<album>/ below the configured output
directory. Tracks whose outputs already exist are skipped unless
--force is given.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			formats := splitter.Formats{Flac: flacOut, Ogg: oggOut, MP3: mp3Out}
			if !formats.Any() {
				formats.Flac = true
			}
			if err := splitter.CheckTools(cfg, formats); err != nil {
				return err
			}

			flacTool := audio.NewFlac(cfg.Tools.Flac, cfg.Tools.Metaflac, cfg.Encoding.FlacCompression)
			var encoders []audio.Encoder
			if formats.Flac {
				encoders = append(encoders, flacTool)
			}
			if formats.Ogg {
				encoders = append(encoders, audio.NewVorbis(cfg.Tools.Oggenc, cfg.Encoding.OggQuality))
			}
			if formats.MP3 {
				encoders = append(encoders, audio.NewMP3(cfg.Tools.Lame, cfg.Encoding.MP3VBRQuality))
			}

			processor := splitter.New(cfg, flacTool, flacTool, encoders)
			return processor.Process(cmd.Context(), &splitter.Options{
				CueSheetPath: args[0],
				Force:        force,
			})
		},
	}

	cmd.Flags().BoolVarP(&flacOut, "flac", "f", false, "encode tracks to FLAC (default when no format is selected)")
	cmd.Flags().BoolVarP(&oggOut, "ogg", "o", false, "encode tracks to Ogg Vorbis")
	cmd.Flags().BoolVarP(&mp3Out, "mp3", "m", false, "encode tracks to MP3")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing output files instead of skipping them")
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "configuration file path")
	cmd.Flags().BoolP("version", "v", false, "print version and license information")
	cmd.SetVersionTemplate(versionBanner)

	return cmd
}

func setupLogging(cfg *config.Config) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)
}
