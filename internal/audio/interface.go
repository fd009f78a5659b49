// Package audio wraps the external tools that do the actual decoding,
// encoding, and tag writing: flac, metaflac, oggenc, and lame. Nothing
// in here touches audio samples directly.
package audio

import "context"

// TagSet is the metadata embedded into each encoded track. Empty values
// are still passed to the encoders as empty tags, not omitted.
type TagSet struct {
	Artist string
	Album  string
	Title  string
	Genre  string
	Date   string
	Track  int
}

// Extractor cuts one track's samples out of the album image into a
// uniquely named temporary WAV file and returns its path. The caller
// owns the file and removes it once every encoder has consumed it.
type Extractor interface {
	Extract(ctx context.Context, imagePath string, track, next int, last bool) (string, error)
}

// Encoder produces one output format from an extracted track. Encoders
// never delete their input.
type Encoder interface {
	Name() string
	Extension() string
	Encode(ctx context.Context, wavPath, outputPath string, tags TagSet) error
}

// CueTagger embeds and removes the cue sheet metadata block on the
// album image, giving the extractor access to the track index points.
type CueTagger interface {
	Embed(ctx context.Context, imagePath, cuePath string) error
	Remove(ctx context.Context, imagePath string) error
}
