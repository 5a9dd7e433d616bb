// Command filter runs one filtering pass over an SRT file and prints the
// result document as JSON. Useful for inspecting classification output
// without going through the HTTP API.
//
// Flags:
//
//	--file     path to the SRT file (required)
//	--user     learner id whose known words apply (required)
//	--language subtitle language code (required)
//	--level    target CEFR level (default B1)
//	--stats    print only the statistics block
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres/userwords"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres/vocabulary"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/provider/lemma"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/app"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/cache"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/config"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/filtering"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/subtitle"
)

func main() {
	fileFlag := flag.String("file", "", "path to the SRT file")
	userFlag := flag.String("user", "", "learner id whose known words apply")
	languageFlag := flag.String("language", "", "subtitle language code")
	levelFlag := flag.String("level", "B1", "target CEFR level")
	statsFlag := flag.Bool("stats", false, "print only the statistics block")
	flag.Parse()

	if *fileFlag == "" || *userFlag == "" || *languageFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	level := domain.LanguageLevel(strings.ToUpper(*levelFlag))
	if !level.IsValid() || level == domain.LevelUnknown {
		log.Fatalf("invalid level %q", *levelFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	raw, err := os.ReadFile(*fileFlag)
	if err != nil {
		logger.Error("read subtitle file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	segments, err := subtitle.Parse(string(raw))
	if err != nil {
		logger.Error("parse subtitles", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, w := range subtitle.Validate(segments) {
		logger.Warn("subtitle warning",
			slog.String("kind", string(w.Kind)),
			slog.Int("segment", w.Index),
			slog.String("message", w.Message),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	vocabRepo := vocabulary.New(pool)
	userWordsRepo := userwords.New(pool)
	vocabCache := cache.New(vocabRepo, logger, cfg.Cache.MaxWords, cfg.Cache.MaxLists, cfg.Cache.WordTTL)
	lemmaClient := lemma.NewClient(cfg.Providers.LemmaURL, cfg.Providers.LemmaTimeout, logger)

	validator := filtering.NewValidator(nil, filtering.WithDefaultBounds(filtering.LengthBounds{
		Min: cfg.Filtering.MinWordLen,
		Max: cfg.Filtering.MaxWordLen,
	}))
	classifier := filtering.NewClassifier(lemmaClient, vocabCache, filtering.ClassifierPolicy{
		TreatBelowLevelAsKnown: cfg.Filtering.BelowLevelKnown,
	}, logger)
	coordinator := filtering.NewCoordinator(validator, classifier, userWordsRepo, cfg.Filtering.Parallelism, logger)

	result, err := coordinator.Filter(ctx, segments, *userFlag, *languageFlag, level)
	if err != nil {
		logger.Error("filtering failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if *statsFlag {
		err = enc.Encode(result.Statistics)
	} else {
		err = enc.Encode(result)
	}
	if err != nil {
		logger.Error("encode result", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
