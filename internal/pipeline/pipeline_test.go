package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/encoder"
	"github.com/AnyUserName/cardgen/internal/fixture"
	"github.com/AnyUserName/cardgen/internal/profile"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, fixture.WriteBases(dir, fixture.CardWidth, fixture.CardHeight))
	return dir
}

func cardFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "card_*_*.png"))
	require.NoError(t, err)
	for i := range matches {
		matches[i] = filepath.Base(matches[i])
	}
	sort.Strings(matches)
	return matches
}

func expectedFiles() []string {
	var names []string
	for _, c := range deck.Full() {
		names = append(names, c.FileName())
	}
	sort.Strings(names)
	return names
}

func TestRunInPlace(t *testing.T) {
	dir := setupAssets(t)
	p := New(Config{AssetsDir: dir, Profile: profile.Get("classic"), Workers: 1})

	m, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, expectedFiles(), cardFiles(t, dir))
	assert.Equal(t, 52, m.Stats.TotalCards)
	assert.Equal(t, 48, m.Stats.RenderedCards)
	assert.Equal(t, 1, m.BuildInfo.Workers)

	for _, c := range deck.Full() {
		entry, ok := m.Cards[c.Key()]
		require.True(t, ok, c.Key())
		assert.Equal(t, c.IsBase(), entry.Base)
		assert.Equal(t, fixture.CardWidth, entry.Width)
		assert.Equal(t, fixture.CardHeight, entry.Height)
		assert.Equal(t, c.Suit.ColorName(), entry.Color)
	}

	// No temp files left behind.
	tmp, _ := filepath.Glob(filepath.Join(dir, ".cardgen-*"))
	assert.Empty(t, tmp)
}

func TestRunSeparateOutput(t *testing.T) {
	assets := setupAssets(t)
	out := filepath.Join(t.TempDir(), "deck")

	m, err := New(Config{AssetsDir: assets, OutputDir: out, Profile: profile.Get("classic")}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expectedFiles(), cardFiles(t, out))

	// Aces are copied byte for byte.
	for _, s := range deck.Suits() {
		want, err := os.ReadFile(filepath.Join(assets, deck.BaseFileName(s)))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(out, deck.BaseFileName(s)))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Len(t, m.Cards, 52)
}

func TestRenderedCardsMatchBase(t *testing.T) {
	dir := setupAssets(t)
	_, err := New(Config{AssetsDir: dir, Profile: profile.Get("classic")}).Run(context.Background())
	require.NoError(t, err)

	for _, c := range deck.Rendered() {
		data, err := os.ReadFile(filepath.Join(dir, c.FileName()))
		require.NoError(t, err)

		x, y, ok := encoder.ReadDPI(data)
		require.True(t, ok, "%s has no pHYs", c.FileName())
		assert.Equal(t, [2]int{72, 72}, [2]int{x, y})

		img, err := imaging.Open(filepath.Join(dir, c.FileName()))
		require.NoError(t, err)
		assert.Equal(t, fixture.CardWidth, img.Bounds().Dx())
		assert.Equal(t, fixture.CardHeight, img.Bounds().Dy())
	}
}

func TestRunIsIdempotent(t *testing.T) {
	dir := setupAssets(t)
	cfg := Config{AssetsDir: dir, Profile: profile.Get("classic"), Workers: 3}

	m1, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	first := cardFiles(t, dir)

	m2, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, cardFiles(t, dir))

	for key, c := range m1.Cards {
		assert.Equal(t, c.Hash, m2.Cards[key].Hash, key)
	}
	assert.NotEqual(t, m1.BuildInfo.RunID, m2.BuildInfo.RunID)
}

func TestRunMissingBase(t *testing.T) {
	dir := setupAssets(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "card_ace_hearts.png")))
	require.NoError(t, os.Remove(filepath.Join(dir, "card_ace_clubs.png")))

	_, err := New(Config{AssetsDir: dir, Profile: profile.Get("classic")}).Run(context.Background())
	require.ErrorIs(t, err, ErrMissingBase)
	assert.ErrorContains(t, err, "card_ace_hearts.png")
	assert.ErrorContains(t, err, "card_ace_clubs.png")
	assert.Len(t, cardFiles(t, dir), 2)
}

func TestRunMissingFont(t *testing.T) {
	dir := setupAssets(t)
	cfg := Config{
		AssetsDir: dir,
		FontPath:  filepath.Join(dir, "NotoMono-Regular.ttf"),
		Profile:   profile.Get("classic"),
	}
	_, err := New(cfg).Run(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, cardFiles(t, dir), 4)
}

func TestRunCorruptBase(t *testing.T) {
	dir := setupAssets(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card_ace_spades.png"), []byte("nope"), 0o644))

	_, err := New(Config{AssetsDir: dir, Profile: profile.Get("classic")}).Run(context.Background())
	assert.ErrorContains(t, err, "decode card_ace_spades.png")
}

func TestRunCanceled(t *testing.T) {
	dir := setupAssets(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{AssetsDir: dir, Profile: profile.Get("classic")}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocateBasesOrder(t *testing.T) {
	dir := setupAssets(t)
	bases, err := LocateBases(dir)
	require.NoError(t, err)
	require.Len(t, bases, 4)
	for i, s := range deck.Suits() {
		assert.Equal(t, s, bases[i].Suit)
		assert.True(t, filepath.IsAbs(bases[i].Path))
		assert.Positive(t, bases[i].Size)
	}

	_, err = LocateBases(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}
