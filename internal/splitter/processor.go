// Package splitter drives the split pipeline: locate the album image
// from the cue sheet, embed the cue sheet into the image's metadata,
// extract and encode each track, and restore the image afterwards.
package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"cuesplit/config"
	"cuesplit/internal/audio"
	"cuesplit/internal/cuesheet"
	"cuesplit/internal/domain"
	"cuesplit/internal/textutil"
)

type Processor struct {
	cfg       *config.Config
	extractor audio.Extractor
	tagger    audio.CueTagger
	encoders  []audio.Encoder
}

func New(cfg *config.Config, extractor audio.Extractor, tagger audio.CueTagger, encoders []audio.Encoder) *Processor {
	return &Processor{
		cfg:       cfg,
		extractor: extractor,
		tagger:    tagger,
		encoders:  encoders,
	}
}

// Options control one split run.
type Options struct {
	CueSheetPath string
	Force        bool
}

// Process runs the whole pipeline for one cue sheet. Tracks whose
// outputs already exist are skipped unless Force is set; skips are not
// failures.
func (p *Processor) Process(ctx context.Context, opts *Options) error {
	imageFile, err := cuesheet.FindImageFile(opts.CueSheetPath)
	if err != nil {
		return err
	}
	imagePath := filepath.Join(filepath.Dir(opts.CueSheetPath), imageFile)

	// Confirm readability before any mutation.
	f, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open album image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close album image: %w", err)
	}

	album, err := cuesheet.Parse(opts.CueSheetPath)
	if err != nil {
		return err
	}
	if len(album.Tracks) == 0 {
		return fmt.Errorf("cue sheet %s contains no tracks", opts.CueSheetPath)
	}

	// The image is mutated in place while the cue sheet block is
	// embedded, so a second run on the same image must fail fast.
	imageLock := flock.New(imagePath + ".lock")
	locked, err := imageLock.TryLock()
	if err != nil {
		return fmt.Errorf("lock album image: %w", err)
	}
	if !locked {
		return fmt.Errorf("album image %s is in use by another run", imagePath)
	}
	defer func() {
		if err := imageLock.Unlock(); err != nil {
			slog.Warn("could not release image lock", "path", imageLock.Path(), "error", err)
		}
	}()

	if err := p.tagger.Embed(ctx, imagePath, opts.CueSheetPath); err != nil {
		return fmt.Errorf("embed cue sheet: %w", err)
	}
	// Removal must run on every exit path so a failed run never leaves
	// the embedded cue sheet block behind.
	defer func() {
		if err := p.tagger.Remove(context.WithoutCancel(ctx), imagePath); err != nil {
			slog.Warn("could not remove embedded cue sheet", "image", imagePath, "error", err)
		}
	}()

	albumDir := filepath.Join(p.cfg.OutputDir,
		textutil.SanitizePathSegment(album.Artist),
		textutil.SanitizePathSegment(album.Title))
	if err := os.MkdirAll(albumDir, 0o755); err != nil {
		return fmt.Errorf("create album directory: %w", err)
	}

	bar := progressbar.NewOptions(
		len(album.Tracks),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		// progressbar.ThemeASCII requires v3.16+, which needs Go 1.22;
		// this is the same value inlined for the Go 1.21 toolchain.
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Splitting tracks...[reset]"),
	)

	encoded, skipped := 0, 0
	for i, track := range album.Tracks {
		next := 0
		last := i == len(album.Tracks)-1
		if !last {
			next = album.Tracks[i+1].Number
		}

		e, s, err := p.processTrack(ctx, imagePath, album, track, next, last, opts.Force)
		if err != nil {
			return fmt.Errorf("track %02d (%s): %w", track.Number, track.Title, err)
		}
		encoded += e
		skipped += s
		bar.Add(1)
	}

	slog.Info("album split complete",
		"artist", album.Artist,
		"album", album.Title,
		"tracks", len(album.Tracks),
		"encoded", encoded,
		"skipped", skipped,
	)
	return nil
}

type pendingEncode struct {
	encoder audio.Encoder
	path    string
}

// processTrack extracts one track and runs every encoder whose output
// is missing or forced. The extractor is not invoked at all when
// nothing needs encoding. The temporary WAV is shared by all encoders
// of the track and removed exactly once, after the last of them.
func (p *Processor) processTrack(ctx context.Context, imagePath string, album *domain.Album, track *domain.Track, next int, last, force bool) (encoded, skipped int, err error) {
	var pending []pendingEncode
	for _, enc := range p.encoders {
		outPath := filepath.Join(p.cfg.OutputDir, TrackOutputPath(album.Artist, album.Title, track.Number, track.Title, enc.Extension()))
		if !force {
			if _, err := os.Stat(outPath); err == nil {
				slog.Info("output exists, skipping", "path", outPath)
				skipped++
				continue
			}
		}
		pending = append(pending, pendingEncode{encoder: enc, path: outPath})
	}
	if len(pending) == 0 {
		return 0, skipped, nil
	}

	wavPath, err := p.extractor.Extract(ctx, imagePath, track.Number, next, last)
	if err != nil {
		return 0, skipped, err
	}
	defer func() {
		if err := os.Remove(wavPath); err != nil {
			slog.Warn("could not remove temporary file", "path", wavPath, "error", err)
		}
	}()

	tags := audio.TagSet{
		Artist: album.Artist,
		Album:  album.Title,
		Title:  track.Title,
		Genre:  album.Genre,
		Date:   album.Date,
		Track:  track.Number,
	}
	for _, pe := range pending {
		if err := pe.encoder.Encode(ctx, wavPath, pe.path, tags); err != nil {
			return encoded, skipped, err
		}
		encoded++
	}
	return encoded, skipped, nil
}
