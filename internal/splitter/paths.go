package splitter

import (
	"fmt"
	"path/filepath"

	"cuesplit/internal/textutil"
)

// TrackOutputPath builds the relative output path for one encoded
// track: <artist>/<album>/<NN title>.<ext>, with every segment
// sanitized and the track number zero-padded to two digits.
func TrackOutputPath(artist, album string, track int, title, ext string) string {
	return filepath.Join(
		textutil.SanitizePathSegment(artist),
		textutil.SanitizePathSegment(album),
		textutil.SanitizePathSegment(fmt.Sprintf("%02d %s", track, title))+"."+ext,
	)
}
