package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxTempAttempts = 16

var errTempExhausted = errors.New("could not allocate a unique temporary file")

// newTempWAV reserves a uniquely named WAV path in dir. The file is
// created with O_EXCL so a concurrently existing file of the same
// generated name can never be clobbered; on collision a fresh name is
// tried, up to maxTempAttempts.
func newTempWAV(dir string) (string, error) {
	for i := 0; i < maxTempAttempts; i++ {
		path := filepath.Join(dir, fmt.Sprintf("cuesplit-%s.wav", uuid.NewString()))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			if err := f.Close(); err != nil {
				return "", fmt.Errorf("close temporary file: %w", err)
			}
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("create temporary file: %w", err)
		}
	}
	return "", errTempExhausted
}
