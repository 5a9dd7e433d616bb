// Package vocabulary implements the dictionary store over PostgreSQL.
// The table is read-mostly: the service reads single words and level slices,
// the seeder command writes in bulk.
package vocabulary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = "id, word, lemma, language, level, part_of_speech, gender, translations, frequency_rank"

// A word is looked up by its lemma first and its surface form second; the
// most frequent match wins when both exist.
const getWordSQL = `
SELECT ` + wordColumns + `
FROM vocabulary_words
WHERE language = $1 AND (lemma = $2 OR word = $2)
ORDER BY (lemma = $2) DESC, frequency_rank NULLS LAST
LIMIT 1`

// GetWord returns the dictionary record for a word or lemma.
// Returns domain.ErrNotFound on miss, which is an expected outcome for
// words outside the dictionary.
func (r *Repo) GetWord(ctx context.Context, word, language string) (*domain.VocabularyWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getWordSQL, language, domain.NormalizeWord(word))
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_word", word)
	}
	return w, nil
}

// GetWordsByLevel returns dictionary records of one CEFR level ordered by
// frequency rank. limit <= 0 means no limit.
func (r *Repo) GetWordsByLevel(ctx context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error) {
	builder := psql.
		Select(wordColumns).
		From("vocabulary_words").
		Where(sq.Eq{"language": language, "level": level.String()}).
		OrderBy("frequency_rank NULLS LAST", "word")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build level query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get words by level: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("get words by level: %w", err)
	}
	return words, nil
}

const upsertWordSQL = `
INSERT INTO vocabulary_words (word, lemma, language, level, part_of_speech, gender, translations, frequency_rank)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (language, word) DO UPDATE SET
    lemma          = EXCLUDED.lemma,
    level          = EXCLUDED.level,
    part_of_speech = EXCLUDED.part_of_speech,
    gender         = EXCLUDED.gender,
    translations   = EXCLUDED.translations,
    frequency_rank = EXCLUDED.frequency_rank`

// UpsertBatch inserts or updates dictionary records in one round trip.
// Used by the seeder; returns the number of rows written.
func (r *Repo) UpsertBatch(ctx context.Context, words []domain.VocabularyWord) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(upsertWordSQL,
			domain.NormalizeWord(w.Word),
			domain.NormalizeWord(w.Lemma),
			w.Language,
			w.Level.String(),
			posToPgText(w.PartOfSpeech),
			ptrStringToPgText(w.Gender),
			w.Translations,
			ptrIntToPgInt4(w.FrequencyRank),
		)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	written := 0
	for range words {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, "vocabulary_word", "batch")
		}
		written += int(tag.RowsAffected())
	}
	return written, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanWords(rows pgx.Rows) ([]domain.VocabularyWord, error) {
	result := []domain.VocabularyWord{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanWord(row pgx.Row) (*domain.VocabularyWord, error) {
	var (
		id            uuid.UUID
		word          string
		lemma         string
		language      string
		level         string
		partOfSpeech  pgtype.Text
		gender        pgtype.Text
		translations  []string
		frequencyRank pgtype.Int4
	)

	if err := row.Scan(&id, &word, &lemma, &language, &level, &partOfSpeech, &gender, &translations, &frequencyRank); err != nil {
		return nil, err
	}

	w := &domain.VocabularyWord{
		ID:           id,
		Word:         word,
		Lemma:        lemma,
		Language:     language,
		Level:        domain.LanguageLevel(level),
		Translations: translations,
	}
	if !w.Level.IsValid() {
		w.Level = domain.LevelUnknown
	}
	if partOfSpeech.Valid {
		pos := domain.PartOfSpeech(partOfSpeech.String)
		w.PartOfSpeech = &pos
	}
	if gender.Valid {
		w.Gender = &gender.String
	}
	if frequencyRank.Valid {
		rank := int(frequencyRank.Int32)
		w.FrequencyRank = &rank
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func posToPgText(p *domain.PartOfSpeech) pgtype.Text {
	if p == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: p.String(), Valid: true}
}

func ptrIntToPgInt4(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*i), Valid: true}
}
