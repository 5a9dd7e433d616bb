package filtering

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// lemmatizer resolves the canonical dictionary form of a word.
type lemmatizer interface {
	Lemmatize(ctx context.Context, word, language string) (string, error)
}

// dictionary looks up vocabulary records, normally through the read-through
// cache. A domain.ErrNotFound result is an expected outcome, not a failure.
type dictionary interface {
	GetWord(ctx context.Context, word, language string) (*domain.VocabularyWord, error)
}

// ClassifierPolicy tunes classification behavior.
type ClassifierPolicy struct {
	// TreatBelowLevelAsKnown marks dictionary words whose CEFR level is at
	// or below the target level as KNOWN even when their lemma is not in the
	// learner's known set. Off by default: an unknown word blocks
	// comprehension regardless of its nominal level.
	TreatBelowLevelAsKnown bool
}

// Classifier decides the status of a single word for a specific learner.
// The decision is a pure function of (lemma, dictionary level, known set,
// target level): identical inputs always yield identical output.
type Classifier struct {
	lemmas lemmatizer
	dict   dictionary
	policy ClassifierPolicy
	log    *slog.Logger
}

// NewClassifier creates a Classifier.
func NewClassifier(lemmas lemmatizer, dict dictionary, policy ClassifierPolicy, logger *slog.Logger) *Classifier {
	return &Classifier{
		lemmas: lemmas,
		dict:   dict,
		policy: policy,
		log:    logger.With("service", "classifier"),
	}
}

// Classify resolves the token's lemma, status and difficulty level in place.
// Resolved lemma and level are cached on the token, so re-classifying a
// token skips the lemmatizer. A lemmatizer failure falls back to the raw
// word as its own lemma; a store failure is returned to the caller.
func (c *Classifier) Classify(ctx context.Context, token *domain.WordToken, knownLemmas map[string]struct{}, targetLevel domain.LanguageLevel, language string) error {
	lemma, err := c.resolveLemma(ctx, token, language)
	if err != nil {
		return err
	}

	if _, known := knownLemmas[lemma]; known {
		token.Status = domain.WordStatusKnown
		return nil
	}

	record, err := c.lookup(ctx, token, lemma, language)
	if err != nil {
		return err
	}

	if record == nil {
		// No dictionary record: still a blocker, still eligible to be
		// marked known later, but without a resolved dictionary id.
		token.Status = domain.WordStatusActive
		if token.Level == nil {
			level := domain.LevelUnknown
			token.Level = &level
		}
		return nil
	}

	token.WordID = &record.ID
	level := record.Level
	token.Level = &level

	if c.policy.TreatBelowLevelAsKnown && record.Level.AtOrBelow(targetLevel) {
		token.Status = domain.WordStatusKnown
		return nil
	}

	token.Status = domain.WordStatusActive
	return nil
}

// resolveLemma returns the cached lemma or asks the lemmatizer, caching the
// result on the token.
func (c *Classifier) resolveLemma(ctx context.Context, token *domain.WordToken, language string) (string, error) {
	if token.Lemma != nil && *token.Lemma != "" {
		return *token.Lemma, nil
	}

	surface := domain.NormalizeWord(token.Text)
	lemma, err := c.lemmas.Lemmatize(ctx, surface, language)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		c.log.WarnContext(ctx, "lemmatizer failed, using surface form",
			slog.String("word", surface),
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
		lemma = surface
	}
	if lemma == "" {
		lemma = surface
	}

	token.Lemma = &lemma
	return lemma, nil
}

// lookup fetches the dictionary record for the lemma, falling back to the
// surface form when the lemma has no record. nil means no record exists.
func (c *Classifier) lookup(ctx context.Context, token *domain.WordToken, lemma, language string) (*domain.VocabularyWord, error) {
	record, err := c.dict.GetWord(ctx, lemma, language)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	surface := domain.NormalizeWord(token.Text)
	if surface == lemma {
		return nil, nil
	}

	record, err = c.dict.GetWord(ctx, surface, language)
	if err == nil {
		return record, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return nil, err
}
