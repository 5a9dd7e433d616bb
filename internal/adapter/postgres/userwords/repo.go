// Package userwords implements the learner's known-word store over
// PostgreSQL. The progress service owns the schema; this repository only
// reads the known set and appends newly marked lemmas.
package userwords

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// Repo provides known-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new known-words repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getKnownLemmasSQL = `
SELECT lemma
FROM user_known_words
WHERE user_id = $1 AND language = $2`

// GetKnownLemmas returns the learner's known lemma set for a language.
// An empty set is a valid state for a new learner, not an error.
func (r *Repo) GetKnownLemmas(ctx context.Context, userID, language string) (map[string]struct{}, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getKnownLemmasSQL, userID, language)
	if err != nil {
		return nil, fmt.Errorf("get known lemmas: %w", err)
	}
	defer rows.Close()

	known := make(map[string]struct{})
	for rows.Next() {
		var lemma string
		if err := rows.Scan(&lemma); err != nil {
			return nil, fmt.Errorf("get known lemmas: %w", err)
		}
		known[lemma] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get known lemmas: %w", err)
	}
	return known, nil
}

const markKnownSQL = `
INSERT INTO user_known_words (user_id, language, lemma)
SELECT $1, $2, unnest($3::text[])
ON CONFLICT DO NOTHING`

// MarkKnown records lemmas as known for the learner. Idempotent: marking a
// lemma twice is not an error.
func (r *Repo) MarkKnown(ctx context.Context, userID, language string, lemmas []string) error {
	if len(lemmas) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(lemmas))
	for _, lemma := range lemmas {
		if n := domain.NormalizeWord(lemma); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, markKnownSQL, userID, language, normalized); err != nil {
		return postgres.MapError(err, "known_word", userID)
	}
	return nil
}

const countKnownSQL = `
SELECT count(*)
FROM user_known_words
WHERE user_id = $1 AND language = $2`

// CountKnown returns the size of the learner's known set for a language.
func (r *Repo) CountKnown(ctx context.Context, userID, language string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countKnownSQL, userID, language).Scan(&count); err != nil {
		return 0, fmt.Errorf("count known lemmas: %w", err)
	}
	return count, nil
}
