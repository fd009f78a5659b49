package splitter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		artist   string
		album    string
		track    int
		title    string
		ext      string
		expected string
	}{
		{
			name:     "plain metadata",
			artist:   "Artist Name",
			album:    "Album Title",
			track:    1,
			title:    "First Song",
			ext:      "flac",
			expected: filepath.Join("Artist Name", "Album Title", "01 First Song.flac"),
		},
		{
			name:     "artist with slash",
			artist:   "AC/DC",
			album:    "Back in Black",
			track:    2,
			title:    "Hells Bells",
			ext:      "mp3",
			expected: filepath.Join("AC-DC", "Back in Black", "02 Hells Bells.mp3"),
		},
		{
			name:     "title with reserved characters",
			artist:   "Someone",
			album:    "Somewhere",
			track:    10,
			title:    "What? No!",
			ext:      "ogg",
			expected: filepath.Join("Someone", "Somewhere", "10 What_ No!.ogg"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackOutputPath(tt.artist, tt.album, tt.track, tt.title, tt.ext)
			assert.Equal(t, tt.expected, got)
		})
	}
}
