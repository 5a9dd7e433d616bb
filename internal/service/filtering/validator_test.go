package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsValidCandidate(t *testing.T) {
	t.Parallel()

	v := NewValidator(nil)

	tests := []struct {
		name     string
		token    string
		language string
		want     bool
	}{
		{name: "content word", token: "Hund", language: "de", want: true},
		{name: "content word with punctuation", token: "läuft.", language: "de", want: true},
		{name: "too short", token: "ab", language: "de", want: false},
		{name: "german article", token: "Der", language: "de", want: false},
		{name: "german pronoun", token: "ich", language: "de", want: false},
		{name: "german auxiliary", token: "bin", language: "de", want: false},
		{name: "german number word", token: "sieben", language: "de", want: false},
		{name: "german interjection", token: "ähm", language: "de", want: false},
		{name: "english article", token: "the", language: "en", want: false},
		{name: "english modal", token: "should", language: "en", want: false},
		{name: "english content word", token: "window", language: "en", want: true},
		{name: "english interjection", token: "oops", language: "en", want: false},
		{name: "spanish article", token: "los", language: "es", want: false},
		{name: "spanish auxiliary", token: "estamos", language: "es", want: false},
		{name: "spanish content word", token: "ventana", language: "es", want: true},
		{name: "case insensitive stopword", token: "DER", language: "de", want: false},
		{name: "unknown language accepts content words", token: "bonjour", language: "fr", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.IsValidCandidate(tt.token, tt.language))
		})
	}
}

func TestValidator_LengthBounds(t *testing.T) {
	t.Parallel()

	v := NewValidator(map[string]LengthBounds{
		"de": {Min: 2, Max: 10},
	})

	assert.True(t, v.IsValidCandidate("ja2", "en"), "default min is 3")
	assert.False(t, v.IsValidCandidate("xy", "en"))
	assert.True(t, v.IsValidCandidate("ok", "de"), "per-language override lowers min")
	assert.False(t, v.IsValidCandidate("zusammenarbeiten", "de"), "per-language max of 10")

	long := make([]byte, 60)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, v.IsValidCandidate(string(long), "en"), "default max is 50")
}

func TestValidator_WithDefaultBounds(t *testing.T) {
	t.Parallel()

	v := NewValidator(nil, WithDefaultBounds(LengthBounds{Min: 2, Max: 5}))

	assert.True(t, v.IsValidCandidate("ok", "fr"))
	assert.False(t, v.IsValidCandidate("fenetre", "fr"), "overridden max of 5")

	partial := NewValidator(nil, WithDefaultBounds(LengthBounds{Min: 2}))
	assert.True(t, partial.IsValidCandidate("ok", "fr"))
	assert.True(t, partial.IsValidCandidate("fenetre", "fr"), "zero max keeps the default")
}
