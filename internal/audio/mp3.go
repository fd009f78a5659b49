package audio

import (
	"context"
	"fmt"
	"strconv"
)

// MP3 wraps the lame binary with high-quality VBR settings.
type MP3 struct {
	command    string
	vbrQuality int
}

func NewMP3(command string, vbrQuality int) *MP3 {
	return &MP3{command: command, vbrQuality: vbrQuality}
}

func (m *MP3) Name() string { return "mp3" }

func (m *MP3) Extension() string { return "mp3" }

func (m *MP3) Encode(ctx context.Context, wavPath, outputPath string, tags TagSet) error {
	args := []string{
		"--quiet",
		"-V", strconv.Itoa(m.vbrQuality),
		"--add-id3v2",
		"--tt", tags.Title,
		"--ta", tags.Artist,
		"--tl", tags.Album,
		"--tn", fmt.Sprintf("%02d", tags.Track),
		"--tg", tags.Genre,
		"--ty", tags.Date,
		wavPath,
		outputPath,
	}
	if err := runTool(ctx, m.command, args...); err != nil {
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	return nil
}
