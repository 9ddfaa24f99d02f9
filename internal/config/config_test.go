package config

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/cardgen/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingIsEmpty(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), "")
	assert.Error(t, err)
}

func TestLoadAndApply(t *testing.T) {
	dir := t.TempDir()
	raw := `
font = "fonts/NotoMono-Regular.ttf"
profile = "inset"
font_size = 48.5
origin_x = 0
dpi = 144
out = "/tmp/deck"
workers = 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(raw), 0o644))

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fonts/NotoMono-Regular.ttf"), cfg.Font)
	assert.Equal(t, "/tmp/deck", cfg.Out)
	assert.Equal(t, "inset", cfg.Profile)
	assert.Equal(t, 2, cfg.Workers)

	p := cfg.Apply(profile.Get(cfg.Profile))
	assert.Equal(t, 48.5, p.FontSize)
	assert.Equal(t, 144, p.DPI)
	// origin_x explicitly zero, origin_y left at the profile value.
	assert.Equal(t, image.Pt(0, 8), p.Origin)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("colour = \"blue\"\n"), 0o644))
	_, err := Load("", dir)
	assert.ErrorContains(t, err, "unknown key")
}

func TestSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	in := &Config{Profile: "large", FontSize: 60}
	require.NoError(t, in.Save(path))

	out, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "large", out.Profile)
	assert.Equal(t, 60.0, out.FontSize)
	assert.Nil(t, out.OriginX)
	assert.Equal(t, path, out.Path)
}
