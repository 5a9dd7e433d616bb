// Package app wires the configuration, adapters, services, and transport
// together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres/userwords"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/postgres/vocabulary"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/provider/lemma"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/provider/transcribe"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/adapter/provider/translate"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/artifact"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/cache"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/config"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/filtering"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/tasks"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/transport/middleware"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/transport/rest"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/transport/ws"
)

// translator is the text translation provider used by the orchestrator.
type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// transcriber is the media-to-segments provider used by the orchestrator.
type transcriber interface {
	Transcribe(ctx context.Context, mediaPath, language string) ([]domain.TimedSegment, error)
}

// Run is the application entry point. It loads configuration, connects the
// adapters, builds the filtering pipeline and task machinery, and serves
// HTTP until ctx is cancelled. Shutdown drains in-flight requests and
// background tasks within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	dbPool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbPool.Close()

	vocabRepo := vocabulary.New(dbPool)
	userWordsRepo := userwords.New(dbPool)
	vocabCache := cache.New(vocabRepo, logger, cfg.Cache.MaxWords, cfg.Cache.MaxLists, cfg.Cache.WordTTL)

	artifacts, err := artifact.NewStore(cfg.Artifacts.Dir, logger)
	if err != nil {
		return fmt.Errorf("open artifact store: %w", err)
	}

	lemmaClient := lemma.NewClient(cfg.Providers.LemmaURL, cfg.Providers.LemmaTimeout, logger)
	translateClient := newTranslator(cfg.Providers, logger)
	transcribeClient := newTranscriber(cfg.Providers, logger)

	validator := filtering.NewValidator(nil, filtering.WithDefaultBounds(filtering.LengthBounds{
		Min: cfg.Filtering.MinWordLen,
		Max: cfg.Filtering.MaxWordLen,
	}))
	classifier := filtering.NewClassifier(lemmaClient, vocabCache, filtering.ClassifierPolicy{
		TreatBelowLevelAsKnown: cfg.Filtering.BelowLevelKnown,
	}, logger)
	coordinator := filtering.NewCoordinator(validator, classifier, userWordsRepo, cfg.Filtering.Parallelism, logger)

	broadcaster := tasks.NewBroadcaster(cfg.Tasks.SubscriberBuffer, logger)
	tracker := tasks.NewTracker(broadcaster, logger)
	workerPool := tasks.NewPool(cfg.Tasks.Workers, cfg.Tasks.QueueSize, logger)

	orchestrator := tasks.NewOrchestrator(
		coordinator,
		transcribeClient,
		translateClient,
		artifacts,
		userWordsRepo,
		tracker,
		workerPool,
		logger,
	)

	taskHandler := rest.NewTaskHandler(orchestrator, tracker, logger)
	vocabHandler := rest.NewVocabularyHandler(vocabCache, logger)
	healthHandler := rest.NewHealthHandler(dbPool, vocabCache, BuildVersion())
	wsHandler := ws.NewHandler(broadcaster, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/filter", taskHandler.Filter)
	mux.HandleFunc("POST /api/v1/process", taskHandler.Process)
	mux.HandleFunc("GET /api/v1/tasks/{id}", taskHandler.Get)
	mux.HandleFunc("POST /api/v1/words/known", taskHandler.MarkKnown)
	mux.HandleFunc("GET /api/v1/vocabulary", vocabHandler.List)
	mux.HandleFunc("GET /ws/progress/{user_id}", wsHandler.Progress)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Identity,
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute, "/ws/", "/live", "/ready"),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown incomplete", slog.String("error", err.Error()))
	}
	if err := workerPool.Shutdown(shutdownCtx); err != nil {
		logger.Warn("worker pool shutdown incomplete", slog.String("error", err.Error()))
	}

	logger.Info("shutdown complete")
	return nil
}

// newTranslator returns the configured translation provider, or the
// pass-through stub when no endpoint is configured.
func newTranslator(cfg config.ProvidersConfig, logger *slog.Logger) translator {
	if cfg.TranslateURL == "" {
		logger.Warn("no translation endpoint configured, translations pass through")
		return translate.NewStub()
	}
	return translate.NewClient(cfg.TranslateURL, cfg.TranslateTimeout, logger)
}

// newTranscriber returns the configured transcription provider, or a
// disabled one that fails media processing tasks as a dependency error.
func newTranscriber(cfg config.ProvidersConfig, logger *slog.Logger) transcriber {
	if cfg.TranscribeURL == "" {
		logger.Warn("no transcription endpoint configured, media processing disabled")
		return transcribe.NewDisabled()
	}
	return transcribe.NewClient(cfg.TranscribeURL, cfg.TranscribeTimeout, logger)
}
