package filtering

import (
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// Refilter recomputes the blocker partition of an existing result after the
// learner marked additional lemmas known, without re-parsing or
// re-classifying anything. Every original blocker lands in exactly one of
// the two output lists, so known + unknown always equals the original count.
func Refilter(original *domain.FilteringResult, newlyKnownLemmas []string) domain.RefilterResult {
	known := make(map[string]struct{}, len(newlyKnownLemmas))
	for _, lemma := range newlyKnownLemmas {
		known[domain.NormalizeWord(lemma)] = struct{}{}
	}

	result := domain.RefilterResult{
		KnownBlockers:   []domain.VocabularyItem{},
		UnknownBlockers: []domain.VocabularyItem{},
	}

	for _, blocker := range original.BlockerWords {
		// The blocker lemma comes from the lemmatizer, which may not
		// lowercase; normalize both sides of the comparison.
		if _, ok := known[domain.NormalizeWord(blocker.Lemma)]; ok {
			result.KnownBlockers = append(result.KnownBlockers, blocker)
		} else {
			result.UnknownBlockers = append(result.UnknownBlockers, blocker)
		}
	}

	result.ReductionPercentage = domain.ReductionPercentage(
		len(result.KnownBlockers),
		len(original.BlockerWords),
	)
	return result
}
