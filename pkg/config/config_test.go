package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(`
[app]
greeting = Hi there

[image]
output = out.bmp
width  = 64
seed   = 12
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Output:   "out.bmp",
		Width:    64,
		Height:   DefaultHeight,
		Seed:     12,
		Greeting: "Hi there",
	}, cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	want := Config{Output: "x.tiff", Width: 7, Height: 3, Seed: 5, Greeting: "hey"}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Height = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output = ""
	assert.Error(t, cfg.Validate())
}
