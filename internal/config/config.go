package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Filtering FilteringConfig `yaml:"filtering"`
	Tasks     TasksConfig     `yaml:"tasks"`
	Providers ProvidersConfig `yaml:"providers"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CacheConfig holds vocabulary lookup cache settings.
type CacheConfig struct {
	WordTTL  time.Duration `yaml:"word_ttl"  env:"CACHE_WORD_TTL"  env-default:"1h"`
	MaxWords int           `yaml:"max_words" env:"CACHE_MAX_WORDS" env-default:"100000"`
	MaxLists int           `yaml:"max_lists" env:"CACHE_MAX_LISTS" env-default:"1000"`
}

// FilteringConfig holds classification pipeline settings.
type FilteringConfig struct {
	Parallelism int  `yaml:"parallelism"          env:"FILTERING_PARALLELISM"          env-default:"8"`
	MinWordLen  int  `yaml:"min_word_len"         env:"FILTERING_MIN_WORD_LEN"         env-default:"3"`
	MaxWordLen  int  `yaml:"max_word_len"         env:"FILTERING_MAX_WORD_LEN"         env-default:"50"`
	BelowLevelKnown bool `yaml:"below_level_known" env:"FILTERING_BELOW_LEVEL_KNOWN" env-default:"false"`
}

// TasksConfig holds background task settings.
type TasksConfig struct {
	Workers          int `yaml:"workers"           env:"TASKS_WORKERS"           env-default:"4"`
	QueueSize        int `yaml:"queue_size"        env:"TASKS_QUEUE_SIZE"        env-default:"64"`
	SubscriberBuffer int `yaml:"subscriber_buffer" env:"TASKS_SUBSCRIBER_BUFFER" env-default:"16"`
}

// ProvidersConfig holds endpoints of the external model services.
type ProvidersConfig struct {
	LemmaURL          string        `yaml:"lemma_url"          env:"PROVIDERS_LEMMA_URL"          env-required:"true"`
	LemmaTimeout      time.Duration `yaml:"lemma_timeout"      env:"PROVIDERS_LEMMA_TIMEOUT"      env-default:"10s"`
	TranslateURL      string        `yaml:"translate_url"      env:"PROVIDERS_TRANSLATE_URL"`
	TranslateTimeout  time.Duration `yaml:"translate_timeout"  env:"PROVIDERS_TRANSLATE_TIMEOUT"  env-default:"30s"`
	TranscribeURL     string        `yaml:"transcribe_url"     env:"PROVIDERS_TRANSCRIBE_URL"`
	TranscribeTimeout time.Duration `yaml:"transcribe_timeout" env:"PROVIDERS_TRANSCRIBE_TIMEOUT" env-default:"10m"`
}

// ArtifactsConfig holds result persistence settings.
type ArtifactsConfig struct {
	Dir string `yaml:"dir" env:"ARTIFACTS_DIR" env-default:"./data/results"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
