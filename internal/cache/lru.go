package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// lruBackend implements backend on two expirable LRUs: one for single-word
// lookups and one for bulk level pages, each with its own TTL.
type lruBackend struct {
	words  *expirable.LRU[string, wordEntry]
	levels *expirable.LRU[string, []domain.VocabularyWord]
}

func newLRUBackend(maxWords, maxLists int, wordTTL, levelTTL time.Duration) *lruBackend {
	return &lruBackend{
		words:  expirable.NewLRU[string, wordEntry](maxWords, nil, wordTTL),
		levels: expirable.NewLRU[string, []domain.VocabularyWord](maxLists, nil, levelTTL),
	}
}

func (b *lruBackend) GetWord(key string) (wordEntry, bool, error) {
	entry, ok := b.words.Get(key)
	return entry, ok, nil
}

func (b *lruBackend) AddWord(key string, entry wordEntry) error {
	b.words.Add(key, entry)
	return nil
}

func (b *lruBackend) GetLevel(key string) ([]domain.VocabularyWord, bool, error) {
	words, ok := b.levels.Get(key)
	return words, ok, nil
}

func (b *lruBackend) AddLevel(key string, words []domain.VocabularyWord) error {
	b.levels.Add(key, words)
	return nil
}

func (b *lruBackend) Remove(key string) error {
	b.words.Remove(key)
	b.levels.Remove(key)
	return nil
}

func (b *lruBackend) RemoveByPrefix(prefix string) error {
	for _, key := range b.words.Keys() {
		if strings.HasPrefix(key, prefix) {
			b.words.Remove(key)
		}
	}
	for _, key := range b.levels.Keys() {
		if strings.HasPrefix(key, prefix) {
			b.levels.Remove(key)
		}
	}
	return nil
}

func (b *lruBackend) Purge() error {
	b.words.Purge()
	b.levels.Purge()
	return nil
}
