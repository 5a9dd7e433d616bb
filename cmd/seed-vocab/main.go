// Command seed-vocab imports a dictionary word list CSV into the
// vocabulary_words table. It is intended to be run offline, not as part of
// the main server.
//
// Flags:
//
//	--file      path to the word list CSV (required)
//	--language  language code of the list, e.g. "de" (required)
//	--dry-run   parse the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres/vocabulary"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/app"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/app/wordlist"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the word list CSV")
	languageFlag := flag.String("language", "", "language code of the list")
	dryRunFlag := flag.Bool("dry-run", false, "parse the file without writing to DB")
	flag.Parse()

	if *fileFlag == "" || *languageFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	file, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer file.Close()

	words, err := wordlist.Parse(file, *languageFlag)
	if err != nil {
		logger.Error("parse word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("word list parsed",
		slog.Int("words", len(words)),
		slog.String("language", *languageFlag),
	)

	if *dryRunFlag {
		logger.Info("dry run, nothing written")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := vocabulary.New(pool)
	txManager := postgres.NewTxManager(pool)

	// The whole import runs in one transaction so a failed batch leaves the
	// dictionary untouched.
	var written int
	err = txManager.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		written, txErr = repo.UpsertBatch(ctx, words)
		return txErr
	})
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete", slog.Int("written", written))
}
