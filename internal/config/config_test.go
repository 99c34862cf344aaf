package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks default filling and rejected values.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty settings become the defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, Default(), cfg)

	// Negative icon size.
	cfg = &Config{IconSize: -1}
	err := Validate(cfg)
	require.ErrorIs(t, err, ErrInvalidSettings)

	// Descriptor pointing at a directory.
	cfg = &Config{Descriptor: "src/.."}
	require.ErrorIs(t, Validate(cfg), ErrInvalidSettings)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFilename)

	settings := &Config{
		Descriptor: "addon/descriptor.json",
		OutputDir:  "dist",
		IconSize:   32,
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "addon/descriptor.json", loaded.Descriptor)
	require.Equal(t, "dist", loaded.OutputDir)
	require.Equal(t, 32, loaded.IconSize)
	require.Equal(t, DefaultSource, loaded.DefaultSource)
	require.Equal(t, DefaultIcon, loaded.Icon)
}

// TestLoadPartialFile keeps defaults for keys missing from the file.
func TestLoadPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: out\n"), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out", loaded.OutputDir)
	require.Equal(t, DefaultDescriptor, loaded.Descriptor)
	require.Equal(t, DefaultIconSize, loaded.IconSize)
}

// TestLoadErrors distinguishes a missing file from a malformed one.
func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("icon_size: [1, 2\n"), 0o600))

	_, err = Load(bad)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

// TestResolve joins relative paths and keeps absolute ones.
func TestResolve(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	require.Equal(t, filepath.Join(workDir, "src", "addon.json"), Resolve(workDir, "src/addon.json"))

	abs := filepath.Join(workDir, "elsewhere", "out")
	require.Equal(t, abs, Resolve("/unrelated", abs))
}
