package splitter

import (
	"fmt"
	"log/slog"

	"cuesplit/config"
	"cuesplit/internal/deps"
)

// Formats selects which output encodings a run produces.
type Formats struct {
	Flac bool
	Ogg  bool
	MP3  bool
}

// Any reports whether at least one format is selected.
func (f Formats) Any() bool {
	return f.Flac || f.Ogg || f.MP3
}

// CheckTools verifies the required external binaries before anything is
// mutated. flac and metaflac are always required; a lossy encoder is
// required only when its format was requested, and is otherwise just a
// logged warning.
func CheckTools(cfg *config.Config, formats Formats) error {
	requirements := []deps.Requirement{
		{Name: "flac", Command: cfg.Tools.Flac, Description: "image decoding and FLAC encoding"},
		{Name: "metaflac", Command: cfg.Tools.Metaflac, Description: "cue sheet metadata embedding"},
		{Name: "oggenc", Command: cfg.Tools.Oggenc, Description: "Ogg Vorbis encoding", Optional: !formats.Ogg},
		{Name: "lame", Command: cfg.Tools.Lame, Description: "MP3 encoding", Optional: !formats.MP3},
	}

	for _, status := range deps.Check(requirements) {
		if status.Available {
			continue
		}
		if status.Optional {
			slog.Warn("optional tool unavailable", "tool", status.Name, "detail", status.Detail)
			continue
		}
		return fmt.Errorf("required tool %s unavailable: %s", status.Name, status.Detail)
	}
	return nil
}
