package audio

import (
	"context"
	"fmt"
	"strconv"
)

// Vorbis wraps the oggenc binary at a fixed quality level.
type Vorbis struct {
	command string
	quality int
}

func NewVorbis(command string, quality int) *Vorbis {
	return &Vorbis{command: command, quality: quality}
}

func (v *Vorbis) Name() string { return "ogg" }

func (v *Vorbis) Extension() string { return "ogg" }

func (v *Vorbis) Encode(ctx context.Context, wavPath, outputPath string, tags TagSet) error {
	args := []string{
		"-Q",
		"-q", strconv.Itoa(v.quality),
		"-t", tags.Title,
		"-a", tags.Artist,
		"-l", tags.Album,
		"-N", fmt.Sprintf("%02d", tags.Track),
		"-G", tags.Genre,
		"-d", tags.Date,
		"-o", outputPath,
		wavPath,
	}
	if err := runTool(ctx, v.command, args...); err != nil {
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	return nil
}
