package domain

import (
	"github.com/google/uuid"
)

// WordToken is a single word occurrence inside a segment. Status and Lemma
// are filled by the classifier; Lemma and Level stay nil/empty until then so
// repeat classification can skip resolved tokens.
type WordToken struct {
	Text      string
	StartTime float64
	EndTime   float64
	Status    WordStatus
	Lemma     *string
	Level     *LanguageLevel
	WordID    *uuid.UUID // resolved dictionary id, nil when no record exists
}

// ResolvedLemma returns the cached lemma, falling back to the normalized
// surface form when lemmatization has not run or produced nothing.
func (t WordToken) ResolvedLemma() string {
	if t.Lemma != nil && *t.Lemma != "" {
		return *t.Lemma
	}
	return NormalizeWord(t.Text)
}

// ResolvedLevel returns the cached difficulty level, LevelUnknown when the
// word has no dictionary record.
func (t WordToken) ResolvedLevel() LanguageLevel {
	if t.Level != nil && t.Level.IsValid() {
		return *t.Level
	}
	return LevelUnknown
}

// VocabularyWord is a read-only dictionary entry. The pipeline consumes it;
// the dictionary store owns it.
type VocabularyWord struct {
	ID            uuid.UUID
	Word          string
	Lemma         string
	Language      string
	Level         LanguageLevel
	PartOfSpeech  *PartOfSpeech
	Gender        *string
	Translations  []string
	FrequencyRank *int
}

// VocabularyItem is the de-duplicated, stably-identified record built from
// active words for client consumption. ID is deterministic: identical
// (lemma, level) pairs always produce the identical ID across runs.
type VocabularyItem struct {
	ID           uuid.UUID     `json:"id"`
	Word         string        `json:"word"`
	Lemma        string        `json:"lemma"`
	Level        LanguageLevel `json:"level"`
	Language     string        `json:"language"`
	Translations []string      `json:"translations,omitempty"`
	Occurrences  int           `json:"occurrences"`
}

// vocabularyItemNamespace seeds deterministic item IDs. Changing it would
// invalidate every client-side cache keyed on item IDs.
var vocabularyItemNamespace = uuid.MustParse("9f2c1a54-7b63-4d8e-a1f0-3c5d9e8b2a71")

// VocabularyItemID derives the deterministic identifier for a
// (lemma-or-surface, level) pair.
func VocabularyItemID(lemma string, level LanguageLevel) uuid.UUID {
	return uuid.NewSHA1(vocabularyItemNamespace, []byte(lemma+"|"+level.String()))
}
