package domain

import "math"

// FilteringStatistics aggregates counts for one filtering run, echoing the
// user/language/level context the run was computed for.
type FilteringStatistics struct {
	TotalSubtitles    int           `json:"total_subtitles"`
	EmptySubtitles    int           `json:"empty_subtitles"`
	SingleBlocker     int           `json:"single_blocker_subtitles"`
	LearningSubtitles int           `json:"learning_subtitles"`
	UniqueBlockers    int           `json:"unique_blockers"`
	Language          string        `json:"language"`
	Level             LanguageLevel `json:"level"`
	UserID            string        `json:"user_id"`
}

// FilteringResult is the immutable outcome of one filtering run.
// Every input segment appears in exactly one of the three partitions.
type FilteringResult struct {
	LearningSubtitles []ClassifiedSegment `json:"learning_subtitles"`
	EmptySubtitles    []TimedSegment      `json:"empty_subtitles"`
	BlockerWords      []VocabularyItem    `json:"blocker_words"`
	Statistics        FilteringStatistics `json:"statistics"`
}

// RefilterResult is the outcome of a second pass over an existing result
// after the learner marked additional lemmas known.
// KnownBlockers + UnknownBlockers always equals the original blocker count.
type RefilterResult struct {
	KnownBlockers       []VocabularyItem `json:"known_blockers"`
	UnknownBlockers     []VocabularyItem `json:"unknown_blockers"`
	ReductionPercentage float64          `json:"reduction_percentage"`
}

// ReductionPercentage computes round(known/original*100, 1).
// Returns 0 when original is 0; no division is performed.
func ReductionPercentage(known, original int) float64 {
	if original == 0 {
		return 0
	}
	return math.Round(float64(known)/float64(original)*1000) / 10
}
