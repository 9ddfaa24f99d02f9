package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/cardgen/internal/fixture"
	"github.com/AnyUserName/cardgen/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return Execute(context.Background())
}

func TestCommandsEndToEnd(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, fixture.WriteBases(assets, fixture.CardWidth, fixture.CardHeight))
	out := filepath.Join(t.TempDir(), "deck")

	require.NoError(t, run(t, "init", assets))
	assert.FileExists(t, filepath.Join(assets, "cardgen.toml"))
	assert.Error(t, run(t, "init", assets), "init must not overwrite")

	require.NoError(t, run(t, "build", assets, "--out", out, "--workers", "2", "--no-color"))
	assert.FileExists(t, filepath.Join(out, manifest.FileName))
	assert.FileExists(t, filepath.Join(out, "card_king_diamonds.png"))
	assert.FileExists(t, filepath.Join(out, "card_ace_spades.png"))

	require.NoError(t, run(t, "validate", out))
	require.NoError(t, run(t, "stats", out))
	require.NoError(t, run(t, "list"))

	sheetPath := filepath.Join(t.TempDir(), "deck.jpg")
	require.NoError(t, run(t, "sheet", out, "-o", sheetPath))
	assert.FileExists(t, sheetPath)

	require.NoError(t, os.Remove(filepath.Join(out, "card_4_hearts.png")))
	assert.ErrorContains(t, run(t, "validate", out), "validation failed")
}

func TestBuildMissingAssets(t *testing.T) {
	err := run(t, "build", filepath.Join(t.TempDir(), "cards"))
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "2.0 KB", formatBytes(2048))
	assert.Equal(t, "1.5 MB", formatBytes(3<<19))
}
