package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTempWAVUniqueNames(t *testing.T) {
	dir := t.TempDir()

	first, err := newTempWAV(dir)
	require.NoError(t, err)
	second, err := newTempWAV(dir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, dir, filepath.Dir(first))
	assert.True(t, strings.HasSuffix(first, ".wav"))

	// Both placeholders must exist: the name is reserved on disk, not
	// just generated.
	_, err = os.Stat(first)
	assert.NoError(t, err)
	_, err = os.Stat(second)
	assert.NoError(t, err)
}

func TestNewTempWAVUnwritableDir(t *testing.T) {
	_, err := newTempWAV(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
