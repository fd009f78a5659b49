package splitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuesplit/config"
)

func writeStubTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestCheckToolsMissingRequestedEncoderIsFatal(t *testing.T) {
	binDir := t.TempDir()
	cfg := config.Default()
	cfg.Tools.Flac = writeStubTool(t, binDir, "flac")
	cfg.Tools.Metaflac = writeStubTool(t, binDir, "metaflac")
	cfg.Tools.Oggenc = writeStubTool(t, binDir, "oggenc")
	cfg.Tools.Lame = filepath.Join(binDir, "no-such-lame")

	// MP3 requested without lame: fatal.
	err := CheckTools(cfg, Formats{MP3: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lame")

	// FLAC only: the missing lame is just a warning.
	assert.NoError(t, CheckTools(cfg, Formats{Flac: true}))
}

func TestCheckToolsCoreToolsAlwaysRequired(t *testing.T) {
	binDir := t.TempDir()
	cfg := config.Default()
	cfg.Tools.Flac = filepath.Join(binDir, "no-such-flac")
	cfg.Tools.Metaflac = writeStubTool(t, binDir, "metaflac")
	cfg.Tools.Oggenc = writeStubTool(t, binDir, "oggenc")
	cfg.Tools.Lame = writeStubTool(t, binDir, "lame")

	// flac is required even when only Ogg output was requested.
	err := CheckTools(cfg, Formats{Ogg: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flac")
}

func TestFormatsAny(t *testing.T) {
	assert.False(t, Formats{}.Any())
	assert.True(t, Formats{Ogg: true}.Any())
	assert.True(t, Formats{Flac: true, MP3: true}.Any())
}
