package filtering

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// knownWordsStore reads the learner's known lemmas (owned by the external
// progress service; read-only here).
type knownWordsStore interface {
	GetKnownLemmas(ctx context.Context, userID, language string) (map[string]struct{}, error)
}

const defaultParallelism = 8

// Coordinator aggregates per-word decisions into per-segment classifications
// and partitions segments for one filtering run.
type Coordinator struct {
	validator   *Validator
	classifier  *Classifier
	knownWords  knownWordsStore
	parallelism int
	log         *slog.Logger
}

// NewCoordinator creates a Coordinator. parallelism bounds how many segments
// classify concurrently; values <= 0 use the default.
func NewCoordinator(validator *Validator, classifier *Classifier, knownWords knownWordsStore, parallelism int, logger *slog.Logger) *Coordinator {
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}
	return &Coordinator{
		validator:   validator,
		classifier:  classifier,
		knownWords:  knownWords,
		parallelism: parallelism,
		log:         logger.With("service", "filtering"),
	}
}

// Filter classifies every word of every segment and partitions the segments:
// zero active words is an empty segment, exactly one contributes its word to
// the global blocker list, two or more make a learning segment. Segments are
// reported in original order; per-segment classification runs in parallel,
// which is safe because each goroutine writes only its own slot and the
// statistics are aggregated afterwards.
func (c *Coordinator) Filter(ctx context.Context, segments []domain.TimedSegment, userID, language string, targetLevel domain.LanguageLevel) (*domain.FilteringResult, error) {
	knownLemmas, err := c.knownWords.GetKnownLemmas(ctx, userID, language)
	if err != nil {
		return nil, fmt.Errorf("load known lemmas: %w", err)
	}

	classified := make([]domain.ClassifiedSegment, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i, segment := range segments {
		g.Go(func() error {
			cs, err := c.classifySegment(gctx, segment, knownLemmas, targetLevel, language)
			if err != nil {
				return fmt.Errorf("segment %d: %w", segment.Index, err)
			}
			classified[i] = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c.partition(classified, userID, language, targetLevel), nil
}

// classifySegment tokenizes one segment and classifies each token.
// Tokens rejected by the validator are functional words: marked KNOWN so
// they never block.
func (c *Coordinator) classifySegment(ctx context.Context, segment domain.TimedSegment, knownLemmas map[string]struct{}, targetLevel domain.LanguageLevel, language string) (domain.ClassifiedSegment, error) {
	tokens := Tokenize(segment)

	for i := range tokens {
		if !c.validator.IsValidCandidate(tokens[i].Text, language) {
			tokens[i].Status = domain.WordStatusKnown
			continue
		}
		if err := c.classifier.Classify(ctx, &tokens[i], knownLemmas, targetLevel, language); err != nil {
			return domain.ClassifiedSegment{}, err
		}
	}

	cs := domain.ClassifiedSegment{Segment: segment, Words: tokens}
	for _, token := range tokens {
		if token.Status == domain.WordStatusActive {
			cs.ActiveWords = append(cs.ActiveWords, token)
		}
	}
	return cs, nil
}

// partition splits classified segments into the three categories and
// aggregates statistics. The per-category appends and set unions are
// associative and commutative over the (already ordered) slice, so parallel
// classification upstream cannot change the outcome.
func (c *Coordinator) partition(classified []domain.ClassifiedSegment, userID, language string, targetLevel domain.LanguageLevel) *domain.FilteringResult {
	result := &domain.FilteringResult{
		LearningSubtitles: []domain.ClassifiedSegment{},
		EmptySubtitles:    []domain.TimedSegment{},
		BlockerWords:      []domain.VocabularyItem{},
	}

	var blockerTokens []domain.WordToken
	singleBlockerCount := 0

	for _, cs := range classified {
		switch cs.ActiveCount() {
		case 0:
			result.EmptySubtitles = append(result.EmptySubtitles, cs.Segment)
		case 1:
			singleBlockerCount++
			blockerTokens = append(blockerTokens, cs.ActiveWords[0])
		default:
			result.LearningSubtitles = append(result.LearningSubtitles, cs)
		}
	}

	result.BlockerWords = BuildVocabularyItems(blockerTokens, language)

	result.Statistics = domain.FilteringStatistics{
		TotalSubtitles:    len(classified),
		EmptySubtitles:    len(result.EmptySubtitles),
		SingleBlocker:     singleBlockerCount,
		LearningSubtitles: len(result.LearningSubtitles),
		UniqueBlockers:    len(result.BlockerWords),
		Language:          language,
		Level:             targetLevel,
		UserID:            userID,
	}

	c.log.Debug("filtering complete",
		slog.Int("total", result.Statistics.TotalSubtitles),
		slog.Int("empty", result.Statistics.EmptySubtitles),
		slog.Int("single_blocker", result.Statistics.SingleBlocker),
		slog.Int("learning", result.Statistics.LearningSubtitles),
		slog.Int("unique_blockers", result.Statistics.UniqueBlockers),
	)

	return result
}

// AllVocabularyItems builds the full de-duplicated vocabulary list of a run:
// the active words of every learning segment merged with the single-segment
// blockers. Items sharing a deterministic ID merge by summing occurrences.
func AllVocabularyItems(result *domain.FilteringResult, language string) []domain.VocabularyItem {
	var tokens []domain.WordToken
	for _, cs := range result.LearningSubtitles {
		tokens = append(tokens, cs.ActiveWords...)
	}
	items := BuildVocabularyItems(tokens, language)

	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[item.ID.String()] = i
	}
	for _, blocker := range result.BlockerWords {
		if i, ok := byID[blocker.ID.String()]; ok {
			items[i].Occurrences += blocker.Occurrences
			continue
		}
		items = append(items, blocker)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Lemma != items[j].Lemma {
			return items[i].Lemma < items[j].Lemma
		}
		return items[i].Level < items[j].Level
	})
	return items
}
