// Package cache provides a read-through cache over the persistent
// dictionary store. A cache backend failure never fails a lookup: the cache
// degrades to direct store access and records the incident in its counters.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// store is the persistent dictionary the cache reads through to.
type store interface {
	GetWord(ctx context.Context, word, language string) (*domain.VocabularyWord, error)
	GetWordsByLevel(ctx context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error)
}

// backend is the raw key/value layer underneath the cache. The LRU backend
// in this package never fails, but the interface keeps the degradation path
// honest and testable.
type backend interface {
	GetWord(key string) (wordEntry, bool, error)
	AddWord(key string, entry wordEntry) error
	GetLevel(key string) ([]domain.VocabularyWord, bool, error)
	AddLevel(key string, words []domain.VocabularyWord) error
	Remove(key string) error
	RemoveByPrefix(prefix string) error
	Purge() error
}

// wordEntry caches a single lookup result. A nil Word records a dictionary
// miss so repeated lookups of unknown words skip the store too.
type wordEntry struct {
	Word *domain.VocabularyWord
}

// Stats exposes cache effectiveness counters.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Errors uint64 `json:"errors"`
}

// VocabularyCache is a read-through cache for dictionary lookups.
// Safe for concurrent use; invalidations are idempotent and last-writer-wins
// is acceptable since cached values are a pure function of store state.
type VocabularyCache struct {
	store   store
	backend backend
	log     *slog.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
	errors atomic.Uint64
}

// Option configures a VocabularyCache.
type Option func(*VocabularyCache)

// WithBackend replaces the default in-memory LRU backend.
func WithBackend(b backend) Option {
	return func(c *VocabularyCache) { c.backend = b }
}

// New creates a VocabularyCache over the given store. maxWords and maxLists
// bound the two LRU segments; wordTTL applies to single-word lookups while
// bulk level reads are kept four times as long.
func New(st store, logger *slog.Logger, maxWords, maxLists int, wordTTL time.Duration, opts ...Option) *VocabularyCache {
	if maxWords <= 0 {
		maxWords = 10_000
	}
	if maxLists <= 0 {
		maxLists = 1_000
	}
	if wordTTL <= 0 {
		wordTTL = time.Hour
	}

	c := &VocabularyCache{
		store:   st,
		backend: newLRUBackend(maxWords, maxLists, wordTTL, 4*wordTTL),
		log:     logger.With("component", "vocab_cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetWord returns the dictionary record for (word, language).
// Returns domain.ErrNotFound for unknown words; the miss itself is cached.
func (c *VocabularyCache) GetWord(ctx context.Context, word, language string) (*domain.VocabularyWord, error) {
	key := wordKey(word, language)

	entry, ok, err := c.backend.GetWord(key)
	if err != nil {
		c.degrade(ctx, "get", err)
	} else if ok {
		c.hits.Add(1)
		if entry.Word == nil {
			return nil, fmt.Errorf("word %q (%s): %w", word, language, domain.ErrNotFound)
		}
		return entry.Word, nil
	} else {
		c.misses.Add(1)
	}

	record, err := c.store.GetWord(ctx, word, language)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	if addErr := c.backend.AddWord(key, wordEntry{Word: record}); addErr != nil {
		c.degrade(ctx, "add", addErr)
	}

	if record == nil || isNotFound(err) {
		return nil, fmt.Errorf("word %q (%s): %w", word, language, domain.ErrNotFound)
	}
	return record, nil
}

// GetWordsByLevel returns the dictionary words for a language/level page,
// read through the cache with the bulk TTL.
func (c *VocabularyCache) GetWordsByLevel(ctx context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error) {
	key := levelKey(language, level, limit, offset)

	words, ok, err := c.backend.GetLevel(key)
	if err != nil {
		c.degrade(ctx, "get_level", err)
	} else if ok {
		c.hits.Add(1)
		return words, nil
	} else {
		c.misses.Add(1)
	}

	words, err = c.store.GetWordsByLevel(ctx, language, level, limit, offset)
	if err != nil {
		return nil, err
	}

	if addErr := c.backend.AddLevel(key, words); addErr != nil {
		c.degrade(ctx, "add_level", addErr)
	}
	return words, nil
}

// Invalidate drops the cached lookup for one word.
func (c *VocabularyCache) Invalidate(word, language string) {
	if err := c.backend.Remove(wordKey(word, language)); err != nil {
		c.degrade(context.Background(), "invalidate", err)
	}
}

// InvalidateLevel drops every cached page for a language/level pair.
func (c *VocabularyCache) InvalidateLevel(language string, level domain.LanguageLevel) {
	if err := c.backend.RemoveByPrefix(levelPrefix(language, level)); err != nil {
		c.degrade(context.Background(), "invalidate_level", err)
	}
}

// InvalidateLanguage drops every cached entry for a language.
func (c *VocabularyCache) InvalidateLanguage(language string) {
	if err := c.backend.RemoveByPrefix(languagePrefix(language)); err != nil {
		c.degrade(context.Background(), "invalidate_language", err)
	}
}

// InvalidateAll empties the cache.
func (c *VocabularyCache) InvalidateAll() {
	if err := c.backend.Purge(); err != nil {
		c.degrade(context.Background(), "invalidate_all", err)
	}
}

// Stats returns a snapshot of the hit/miss/error counters.
func (c *VocabularyCache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Errors: c.errors.Load(),
	}
}

// degrade records a backend failure. Lookups continue against the store.
func (c *VocabularyCache) degrade(ctx context.Context, op string, err error) {
	c.errors.Add(1)
	c.log.WarnContext(ctx, "cache backend degraded, using store directly",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func wordKey(word, language string) string {
	return languagePrefix(language) + "w|" + domain.NormalizeWord(word)
}

func levelKey(language string, level domain.LanguageLevel, limit, offset int) string {
	return fmt.Sprintf("%s%d|%d", levelPrefix(language, level), limit, offset)
}

func levelPrefix(language string, level domain.LanguageLevel) string {
	return languagePrefix(language) + "l|" + level.String() + "|"
}

func languagePrefix(language string) string {
	return strings.ToLower(language) + "|"
}
