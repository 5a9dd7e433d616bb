package filtering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

func newTestCoordinator(known map[string]struct{}, lemmas map[string]string, words map[string]*domain.VocabularyWord) *Coordinator {
	classifier := NewClassifier(
		&mockLemmatizer{Lemmas: lemmas},
		&mockDictionary{Words: words},
		ClassifierPolicy{},
		testLogger(),
	)
	return NewCoordinator(
		NewValidator(nil),
		classifier,
		&mockKnownWords{Known: known},
		4,
		testLogger(),
	)
}

func segment(index int, start, end float64, text string) domain.TimedSegment {
	return domain.TimedSegment{Index: index, StartTime: start, EndTime: end, Text: text, OriginalText: text}
}

func TestFilter_PartitionsSegments(t *testing.T) {
	t.Parallel()

	// Known lemmas ich/bin/hier; "Der Hund läuft" carries two unknown
	// content words, "Ich bin hier" none.
	coord := newTestCoordinator(
		map[string]struct{}{"ich": {}, "bin": {}, "hier": {}},
		map[string]string{"läuft": "laufen"},
		nil,
	)

	segments := []domain.TimedSegment{
		segment(1, 0, 2, "Der Hund läuft"),
		segment(2, 3, 5, "Ich bin hier"),
	}

	result, err := coord.Filter(context.Background(), segments, "user-1", "de", domain.LevelA2)
	require.NoError(t, err)

	require.Len(t, result.LearningSubtitles, 1)
	assert.Equal(t, 1, result.LearningSubtitles[0].Segment.Index)
	assert.Len(t, result.LearningSubtitles[0].ActiveWords, 2)

	require.Len(t, result.EmptySubtitles, 1)
	assert.Equal(t, 2, result.EmptySubtitles[0].Index)

	assert.Empty(t, result.BlockerWords)

	stats := result.Statistics
	assert.Equal(t, 2, stats.TotalSubtitles)
	assert.Equal(t, 1, stats.EmptySubtitles)
	assert.Equal(t, 0, stats.SingleBlocker)
	assert.Equal(t, 1, stats.LearningSubtitles)
	assert.Equal(t, "de", stats.Language)
	assert.Equal(t, domain.LevelA2, stats.Level)
	assert.Equal(t, "user-1", stats.UserID)
}

func TestFilter_SingleBlocker(t *testing.T) {
	t.Parallel()

	coord := newTestCoordinator(
		map[string]struct{}{"laufen": {}},
		map[string]string{"läuft": "laufen"},
		nil,
	)

	// "Hund" is the only unknown content word; everything else is either a
	// functional word or a known lemma.
	segments := []domain.TimedSegment{
		segment(1, 0, 2, "Der Hund läuft hier"),
	}

	result, err := coord.Filter(context.Background(), segments, "user-1", "de", domain.LevelA2)
	require.NoError(t, err)

	assert.Empty(t, result.LearningSubtitles)
	assert.Empty(t, result.EmptySubtitles)
	require.Len(t, result.BlockerWords, 1)
	assert.Equal(t, "hund", result.BlockerWords[0].Lemma)
	assert.Equal(t, 1, result.Statistics.SingleBlocker)
	assert.Equal(t, 1, result.Statistics.UniqueBlockers)
}

func TestFilter_PartitionComplete(t *testing.T) {
	t.Parallel()

	coord := newTestCoordinator(
		map[string]struct{}{"ich": {}, "bin": {}},
		nil,
		nil,
	)

	segments := []domain.TimedSegment{
		segment(1, 0, 1, "Ich bin da"),
		segment(2, 1, 2, "Quark Hund Katze"),
		segment(3, 2, 3, "Nur Quarkspeise"),
		segment(4, 3, 4, "Und ich auch"),
	}

	result, err := coord.Filter(context.Background(), segments, "user-1", "de", domain.LevelB1)
	require.NoError(t, err)

	total := len(result.EmptySubtitles) + len(result.LearningSubtitles) + result.Statistics.SingleBlocker
	assert.Equal(t, len(segments), total, "every segment lands in exactly one partition")
	assert.Equal(t, len(segments), result.Statistics.TotalSubtitles)
}

func TestFilter_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	known := map[string]struct{}{"ich": {}}
	var segments []domain.TimedSegment
	texts := []string{
		"Der Hund läuft schnell",
		"Ich bin hier",
		"Eine Katze schläft dort",
		"Quarkspeise schmeckt gut",
		"Ich auch",
	}
	for i, text := range texts {
		segments = append(segments, segment(i+1, float64(i), float64(i+1), text))
	}

	sequential := NewCoordinator(NewValidator(nil), NewClassifier(&mockLemmatizer{}, &mockDictionary{}, ClassifierPolicy{}, testLogger()), &mockKnownWords{Known: known}, 1, testLogger())
	parallel := NewCoordinator(NewValidator(nil), NewClassifier(&mockLemmatizer{}, &mockDictionary{}, ClassifierPolicy{}, testLogger()), &mockKnownWords{Known: known}, 8, testLogger())

	seqResult, err := sequential.Filter(context.Background(), segments, "user-1", "de", domain.LevelA2)
	require.NoError(t, err)
	parResult, err := parallel.Filter(context.Background(), segments, "user-1", "de", domain.LevelA2)
	require.NoError(t, err)

	assert.Equal(t, seqResult.Statistics, parResult.Statistics)
	assert.Equal(t, seqResult.BlockerWords, parResult.BlockerWords)
	require.Equal(t, len(seqResult.LearningSubtitles), len(parResult.LearningSubtitles))
	for i := range seqResult.LearningSubtitles {
		assert.Equal(t, seqResult.LearningSubtitles[i].Segment, parResult.LearningSubtitles[i].Segment)
	}
}

func TestFilter_PreservesSegmentOrder(t *testing.T) {
	t.Parallel()

	coord := newTestCoordinator(nil, nil, nil)

	var segments []domain.TimedSegment
	for i := 1; i <= 20; i++ {
		segments = append(segments, segment(i, float64(i), float64(i)+1, "Quarkspeise Hundekuchen Katzenminze"))
	}

	result, err := coord.Filter(context.Background(), segments, "user-1", "de", domain.LevelA2)
	require.NoError(t, err)

	require.Len(t, result.LearningSubtitles, 20)
	for i, cs := range result.LearningSubtitles {
		assert.Equal(t, i+1, cs.Segment.Index, "segments reported in original order")
	}
}

func TestAllVocabularyItems_MergesBlockers(t *testing.T) {
	t.Parallel()

	coord := newTestCoordinator(map[string]struct{}{"ich": {}, "bin": {}}, nil, nil)

	segments := []domain.TimedSegment{
		segment(1, 0, 1, "Quarkspeise Hundekuchen"), // learning
		segment(2, 1, 2, "Ich bin Quarkspeise"),     // single blocker, same lemma
	}

	result, err := coord.Filter(context.Background(), segments, "user-1", "de", domain.LevelA2)
	require.NoError(t, err)

	items := AllVocabularyItems(result, "de")
	require.Len(t, items, 2)

	byLemma := map[string]domain.VocabularyItem{}
	for _, item := range items {
		byLemma[item.Lemma] = item
	}
	assert.Equal(t, 2, byLemma["quarkspeise"].Occurrences, "occurrences merge across partitions")
	assert.Equal(t, 1, byLemma["hundekuchen"].Occurrences)
}
