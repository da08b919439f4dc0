package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, int64(5), cfg.DemoValue)
	require.False(t, cfg.Verbose)
	require.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	require.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := Config{DemoValue: 7, Verbose: true, HistoryFile: "/tmp/h", ConfirmAbove: 50}
	require.NoError(t, SaveTo(path, want))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verbose": true}`), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, int64(DefaultDemoValue), cfg.DemoValue)
	assert.Equal(t, int64(DefaultConfirmAbove), cfg.ConfirmAbove)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFrom(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"demo_value":`), 0o600))
	_, err = LoadFrom(broken)
	require.Error(t, err)

	negative := filepath.Join(dir, "negative.json")
	require.NoError(t, os.WriteFile(negative, []byte(`{"demo_value": -1}`), 0o600))
	_, err = LoadFrom(negative)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{DemoValue: 3, HistoryFile: "  "}
	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultHistoryFile, cfg.HistoryFile)

	cfg = Config{ConfirmAbove: -5}
	require.Error(t, cfg.Validate())
}

func TestNeedsConfirmation(t *testing.T) {
	cfg := Config{ConfirmAbove: 100}
	assert.False(t, cfg.NeedsConfirmation(100))
	assert.True(t, cfg.NeedsConfirmation(101))

	cfg.ConfirmAbove = 0
	assert.False(t, cfg.NeedsConfirmation(1 << 40))
}

func TestValidateNonNegative(t *testing.T) {
	assert.NoError(t, validateNonNegative("12"))
	assert.Error(t, validateNonNegative("-1"))
	assert.Error(t, validateNonNegative("1e3"))
}
