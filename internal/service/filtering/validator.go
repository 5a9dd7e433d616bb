package filtering

import (
	"unicode/utf8"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const (
	defaultMinWordLen = 3
	defaultMaxWordLen = 50
)

// LengthBounds restricts candidate word length for one language.
type LengthBounds struct {
	Min int
	Max int
}

// Validator decides whether a token is a vocabulary candidate at all.
// Pure and stateless: the same token and language always yield the same
// answer.
type Validator struct {
	defaultBounds LengthBounds
	perLanguage   map[string]LengthBounds
}

// Option configures a Validator.
type Option func(*Validator)

// WithDefaultBounds replaces the default length bounds. Non-positive values
// keep the built-in defaults.
func WithDefaultBounds(b LengthBounds) Option {
	return func(v *Validator) {
		if b.Min > 0 {
			v.defaultBounds.Min = b.Min
		}
		if b.Max > 0 {
			v.defaultBounds.Max = b.Max
		}
	}
}

// NewValidator creates a Validator with the default 3..50 length bounds.
// perLanguage overrides the bounds for specific language codes.
func NewValidator(perLanguage map[string]LengthBounds, opts ...Option) *Validator {
	v := &Validator{
		defaultBounds: LengthBounds{Min: defaultMinWordLen, Max: defaultMaxWordLen},
		perLanguage:   perLanguage,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// IsValidCandidate reports whether the token can count as vocabulary in the
// given language. Checks run in order: length bounds, stopword/functional
// table, interjections. Lookups are case-insensitive.
func (v *Validator) IsValidCandidate(token, language string) bool {
	word := domain.NormalizeWord(token)

	bounds := v.defaultBounds
	if b, ok := v.perLanguage[language]; ok {
		bounds = b
	}

	length := utf8.RuneCountInString(word)
	if length < bounds.Min || length > bounds.Max {
		return false
	}

	if set, ok := stopwords[language]; ok {
		if _, found := set[word]; found {
			return false
		}
	}

	if set, ok := interjections[language]; ok {
		if _, found := set[word]; found {
			return false
		}
	}

	return true
}
