// Package cuesheet reads the subset of the cue sheet grammar needed to
// split an album image: the FILE directive naming the image, the
// album-level PERFORMER/TITLE pair, GENRE and DATE remarks, and the
// per-track TRACK/TITLE pairs.
package cuesheet

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cuesplit/internal/domain"
)

// ErrNoSourceFile is returned when a cue sheet has no FILE directive.
var ErrNoSourceFile = errors.New("cue sheet has no FILE directive")

// FindImageFile scans the cue sheet for its FILE directive and returns
// the quoted image filename.
func FindImageFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open cue sheet: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "FILE") {
			continue
		}
		if name := quotedArg(line); name != "" {
			return name, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read cue sheet: %w", err)
	}
	return "", fmt.Errorf("%w: %s", ErrNoSourceFile, path)
}

// Parse walks the whole cue sheet and returns the album with its tracks
// in sheet order. Album-level PERFORMER/TITLE lines are only honored
// until the album title is known; after that, TITLE lines name tracks.
func Parse(path string) (*domain.Album, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cue sheet: %w", err)
	}
	defer f.Close()

	album := &domain.Album{}
	var (
		trackNumber int
		trackTitle  string
		haveTitle   bool
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "REM":
			applyRemark(album, fields)
		case "FILE":
			album.ImageFile = quotedArg(line)
		case "PERFORMER":
			if album.Title == "" {
				album.Artist = quotedArg(line)
			}
		case "TRACK":
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					trackNumber = n
				} else {
					trackNumber = len(album.Tracks) + 1
				}
			}
		case "TITLE":
			if album.Title == "" && trackNumber == 0 {
				album.Title = quotedArg(line)
			} else {
				trackTitle = quotedArg(line)
				haveTitle = true
			}
		}

		if trackNumber > 0 && haveTitle {
			album.Tracks = append(album.Tracks, &domain.Track{
				Number: trackNumber,
				Title:  trackTitle,
			})
			trackTitle = ""
			haveTitle = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cue sheet: %w", err)
	}
	return album, nil
}

// applyRemark handles REM GENRE and REM DATE; all other remarks are
// ignored. A later GENRE remark overwrites an earlier one.
func applyRemark(album *domain.Album, fields []string) {
	if len(fields) < 3 {
		return
	}
	switch fields[1] {
	case "GENRE":
		album.Genre = strings.ReplaceAll(strings.Join(fields[2:], " "), `"`, "")
	case "DATE":
		album.Date = fields[2]
	}
}

// quotedArg returns the first double-quoted argument on the line, or ""
// when the line has none.
func quotedArg(line string) string {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return ""
	}
	rest := line[start+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return rest
	}
	return rest[:end]
}
