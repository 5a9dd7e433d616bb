package testhelper

import (
	"context"
	"testing"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := SeedVocabularyWord(t, pool, domain.VocabularyWord{Level: domain.LevelA1})

	var lemma string
	err := pool.QueryRow(
		context.Background(),
		`SELECT lemma FROM vocabulary_words WHERE id = $1`,
		word.ID,
	).Scan(&lemma)
	if err != nil {
		t.Fatalf("expected word in DB, got error: %v", err)
	}

	if lemma != word.Lemma {
		t.Fatalf("expected lemma %q, got %q", word.Lemma, lemma)
	}
}
