package filtering

import (
	"sort"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// BuildVocabularyItems turns active word tokens into de-duplicated,
// stably-identified vocabulary records for client consumption. One item is
// produced per distinct (lemma-or-surface, level) pair; the identifier is
// deterministic, so identical inputs across runs merge cleanly in client
// caches. Output order is deterministic too: sorted by lemma, then level.
func BuildVocabularyItems(tokens []domain.WordToken, language string) []domain.VocabularyItem {
	type key struct {
		lemma string
		level domain.LanguageLevel
	}

	grouped := make(map[key]*domain.VocabularyItem)
	for _, token := range tokens {
		if token.Status != domain.WordStatusActive {
			continue
		}
		lemma := token.ResolvedLemma()
		if lemma == "" {
			continue
		}
		k := key{lemma: lemma, level: token.ResolvedLevel()}

		if item, ok := grouped[k]; ok {
			item.Occurrences++
			continue
		}
		grouped[k] = &domain.VocabularyItem{
			ID:          domain.VocabularyItemID(lemma, k.level),
			Word:        domain.NormalizeWord(token.Text),
			Lemma:       lemma,
			Level:       k.level,
			Language:    language,
			Occurrences: 1,
		}
	}

	items := make([]domain.VocabularyItem, 0, len(grouped))
	for _, item := range grouped {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Lemma != items[j].Lemma {
			return items[i].Lemma < items[j].Lemma
		}
		return items[i].Level < items[j].Level
	})
	return items
}
