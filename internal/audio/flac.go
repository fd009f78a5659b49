package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Flac wraps the flac and metaflac binaries. It serves three roles:
// extracting per-track WAV segments from the album image, encoding the
// lossless output format, and embedding/removing the cue sheet metadata
// block that the extraction relies on.
type Flac struct {
	flacCmd     string
	metaflacCmd string
	compression int
}

// NewFlac returns a Flac adapter using the given commands and
// compression level (flac accepts 0 through 8).
func NewFlac(flacCmd, metaflacCmd string, compression int) *Flac {
	return &Flac{
		flacCmd:     flacCmd,
		metaflacCmd: metaflacCmd,
		compression: compression,
	}
}

func (f *Flac) Name() string { return "flac" }

func (f *Flac) Extension() string { return "flac" }

// Extract decodes the cue index range of one track into a fresh
// temporary WAV next to the image. The range runs from this track's
// first index to the next track's, or to the end of the image for the
// last track.
func (f *Flac) Extract(ctx context.Context, imagePath string, track, next int, last bool) (string, error) {
	wavPath, err := newTempWAV(filepath.Dir(imagePath))
	if err != nil {
		return "", err
	}

	args := []string{"-d", "-f", "--silent", "--cue=" + cueRange(track, next, last), "-o", wavPath, imagePath}
	if err := runTool(ctx, f.flacCmd, args...); err != nil {
		_ = os.Remove(wavPath)
		return "", fmt.Errorf("extract track %d: %w", track, err)
	}
	return wavPath, nil
}

// Encode compresses the WAV into the final FLAC file with tags. The
// input file is left in place for any other encoders of the same track.
func (f *Flac) Encode(ctx context.Context, wavPath, outputPath string, tags TagSet) error {
	args := []string{fmt.Sprintf("-%d", f.compression), "-f", "--silent", "-o", outputPath}
	args = append(args, flacTagArgs(tags)...)
	args = append(args, wavPath)
	if err := runTool(ctx, f.flacCmd, args...); err != nil {
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	return nil
}

// Embed imports the cue sheet into the image's metadata so that
// per-track extraction can address cue index points.
func (f *Flac) Embed(ctx context.Context, imagePath, cuePath string) error {
	return runTool(ctx, f.metaflacCmd, "--import-cuesheet-from="+cuePath, imagePath)
}

// Remove strips the embedded cue sheet block back out of the image,
// restoring its original metadata.
func (f *Flac) Remove(ctx context.Context, imagePath string) error {
	return runTool(ctx, f.metaflacCmd, "--remove", "--block-type=CUESHEET", imagePath)
}

// cueRange formats the whole-index cue range for flac's --cue flag.
func cueRange(track, next int, last bool) string {
	if last {
		return fmt.Sprintf("%d.1-", track)
	}
	return fmt.Sprintf("%d.1-%d.1", track, next)
}

func flacTagArgs(tags TagSet) []string {
	return []string{
		"-T", "TITLE=" + tags.Title,
		"-T", "ARTIST=" + tags.Artist,
		"-T", "ALBUM=" + tags.Album,
		"-T", fmt.Sprintf("TRACKNUMBER=%02d", tags.Track),
		"-T", "GENRE=" + tags.Genre,
		"-T", "DATE=" + tags.Date,
	}
}
