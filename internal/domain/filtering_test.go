package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReductionPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		known    int
		original int
		want     float64
	}{
		{name: "one of three", known: 1, original: 3, want: 33.3},
		{name: "all known", known: 5, original: 5, want: 100},
		{name: "none known", known: 0, original: 7, want: 0},
		{name: "zero original", known: 0, original: 0, want: 0},
		{name: "two thirds", known: 2, original: 3, want: 66.7},
		{name: "rounds half up", known: 1, original: 8, want: 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ReductionPercentage(tt.known, tt.original), 0.001)
		})
	}
}

func TestVocabularyItemID_Deterministic(t *testing.T) {
	t.Parallel()

	a := VocabularyItemID("laufen", LevelA2)
	b := VocabularyItemID("laufen", LevelA2)
	assert.Equal(t, a, b, "identical inputs must produce the identical id")

	c := VocabularyItemID("laufen", LevelB1)
	assert.NotEqual(t, a, c, "different levels produce different ids")

	d := VocabularyItemID("rennen", LevelA2)
	assert.NotEqual(t, a, d, "different lemmas produce different ids")
}

func TestLanguageLevel_Rank(t *testing.T) {
	t.Parallel()

	assert.True(t, LevelA1.AtOrBelow(LevelA2))
	assert.True(t, LevelA2.AtOrBelow(LevelA2))
	assert.False(t, LevelB1.AtOrBelow(LevelA2))
	assert.False(t, LevelUnknown.AtOrBelow(LevelC2))
	assert.Equal(t, 0, LevelUnknown.Rank())
}
