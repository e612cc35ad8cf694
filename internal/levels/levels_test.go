package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mclardy/hexaword/internal/puzzle"
)

func TestInitLoadsEmbeddedPack(t *testing.T) {
	require.NoError(t, Init())
	require.Greater(t, Count(), 0)

	for _, lv := range All() {
		assert.NotEmpty(t, lv.ID)
		assert.NotEmpty(t, lv.Name)
		assert.Equal(t, DefaultRadius, lv.Radius)
		assert.NoError(t, puzzle.CheckWordList(lv.Words), "level %s", lv.ID)
	}
}

func TestByID(t *testing.T) {
	require.NoError(t, Init())

	first := All()[0]
	got, ok := ByID(first.ID)
	require.True(t, ok)
	assert.Equal(t, first.Name, got.Name)

	_, ok = ByID("no-such-level")
	assert.False(t, ok)
}

// TestEmbeddedLevelsGenerate ensures every curated level produces a fully
// placed board under its default seed.
func TestEmbeddedLevelsGenerate(t *testing.T) {
	require.NoError(t, Init())

	for _, lv := range All() {
		res, err := puzzle.Generate(lv.Words, lv.ID+":0", lv.Radius)
		require.NoError(t, err, "level %s", lv.ID)
		assert.True(t, res.Success, "level %s placed partially", lv.ID)
		assert.Len(t, res.PlacedWords, len(lv.Words), "level %s", lv.ID)
	}
}

func TestNormalize(t *testing.T) {
	l := Level{Words: []string{" cat", "Art ", "tea"}}
	l.Normalize()
	assert.Equal(t, []string{"CAT", "ART", "TEA"}, l.Words)
	assert.Equal(t, DefaultRadius, l.Radius)
}
