package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVocabularyWord inserts one dictionary record and returns it with the
// generated id filled in. Word and lemma default to a unique value when empty.
func SeedVocabularyWord(t *testing.T, pool *pgxpool.Pool, w domain.VocabularyWord) domain.VocabularyWord {
	t.Helper()
	ctx := context.Background()

	if w.Word == "" {
		w.Word = "word-" + uniqueSuffix()
	}
	if w.Lemma == "" {
		w.Lemma = w.Word
	}
	if w.Language == "" {
		w.Language = "de"
	}
	if w.Level == "" {
		w.Level = domain.LevelUnknown
	}
	if w.Translations == nil {
		w.Translations = []string{}
	}

	var pos *string
	if w.PartOfSpeech != nil {
		s := w.PartOfSpeech.String()
		pos = &s
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO vocabulary_words (word, lemma, language, level, part_of_speech, gender, translations, frequency_rank)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		w.Word, w.Lemma, w.Language, w.Level.String(), pos, w.Gender, w.Translations, w.FrequencyRank,
	).Scan(&w.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabularyWord insert: %v", err)
	}

	return w
}

// SeedKnownLemmas marks lemmas known for a learner.
func SeedKnownLemmas(t *testing.T, pool *pgxpool.Pool, userID, language string, lemmas ...string) {
	t.Helper()
	ctx := context.Background()

	for _, lemma := range lemmas {
		_, err := pool.Exec(ctx,
			`INSERT INTO user_known_words (user_id, language, lemma)
			 VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			userID, language, lemma,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedKnownLemmas insert %q: %v", lemma, err)
		}
	}
}
