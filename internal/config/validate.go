package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Filtering.validate(); err != nil {
		return fmt.Errorf("filtering: %w", err)
	}
	if err := c.Tasks.validate(); err != nil {
		return fmt.Errorf("tasks: %w", err)
	}

	if c.Artifacts.Dir == "" {
		return fmt.Errorf("artifacts.dir must not be empty")
	}

	return nil
}

func (c *CacheConfig) validate() error {
	if c.WordTTL <= 0 {
		return fmt.Errorf("word_ttl must be > 0 (got %v)", c.WordTTL)
	}
	if c.MaxWords <= 0 {
		return fmt.Errorf("max_words must be > 0 (got %d)", c.MaxWords)
	}
	if c.MaxLists <= 0 {
		return fmt.Errorf("max_lists must be > 0 (got %d)", c.MaxLists)
	}
	return nil
}

func (c *FilteringConfig) validate() error {
	if c.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be > 0 (got %d)", c.Parallelism)
	}
	if c.MinWordLen <= 0 {
		return fmt.Errorf("min_word_len must be > 0 (got %d)", c.MinWordLen)
	}
	if c.MaxWordLen < c.MinWordLen {
		return fmt.Errorf("max_word_len must be >= min_word_len (got %d < %d)", c.MaxWordLen, c.MinWordLen)
	}
	return nil
}

func (c *TasksConfig) validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", c.QueueSize)
	}
	if c.SubscriberBuffer <= 0 {
		return fmt.Errorf("subscriber_buffer must be > 0 (got %d)", c.SubscriberBuffer)
	}
	return nil
}
