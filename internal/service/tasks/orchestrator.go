package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/artifact"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/filtering"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/subtitle"
)

type filterEngine interface {
	Filter(ctx context.Context, segments []domain.TimedSegment, userID, language string, targetLevel domain.LanguageLevel) (*domain.FilteringResult, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, mediaPath, language string) ([]domain.TimedSegment, error)
}

type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

type artifactStore interface {
	WriteResult(taskID string, doc artifact.Document) (string, error)
	WriteHighlighted(taskID, srt string) (string, error)
}

type knownWordsWriter interface {
	MarkKnown(ctx context.Context, userID, language string, lemmas []string) error
}

// FilterInput submits pre-existing subtitle text for filtering.
type FilterInput struct {
	UserID       string
	SubtitleText string
	Language     string
	TargetLevel  domain.LanguageLevel
}

// ProcessInput submits a media file for the full pipeline:
// transcribe, translate, filter.
type ProcessInput struct {
	UserID         string
	MediaPath      string
	Language       string
	NativeLanguage string
	TargetLevel    domain.LanguageLevel
}

// Orchestrator validates submissions, runs the pipeline on the worker pool,
// and reports progress through the tracker. Validation rejects a request
// before any task exists; runtime dependency failures fail the task on both
// the push and poll channels.
type Orchestrator struct {
	filter      filterEngine
	transcriber transcriber
	translator  translator
	artifacts   artifactStore
	knownWords  knownWordsWriter
	tracker     *Tracker
	pool        *Pool
	log         *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	filter filterEngine,
	transcriber transcriber,
	translator translator,
	artifacts artifactStore,
	knownWords knownWordsWriter,
	tracker *Tracker,
	pool *Pool,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		filter:      filter,
		transcriber: transcriber,
		translator:  translator,
		artifacts:   artifacts,
		knownWords:  knownWords,
		tracker:     tracker,
		pool:        pool,
		log:         logger.With("service", "orchestrator"),
	}
}

// SubmitFiltering parses and validates the subtitle text, registers a task,
// and schedules the filtering run. The returned task id is valid for polling
// immediately.
func (o *Orchestrator) SubmitFiltering(ctx context.Context, in FilterInput) (string, error) {
	if err := validateSubmission(in.UserID, in.Language, in.TargetLevel); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.SubtitleText) == "" {
		return "", domain.NewValidationError("subtitle_text", "must not be empty")
	}

	segments, err := subtitle.Parse(in.SubtitleText)
	if err != nil {
		return "", fmt.Errorf("parse subtitles: %w", err)
	}

	taskID := uuid.NewString()
	o.tracker.Start(taskID, in.UserID)

	if err := o.pool.Submit(func(jobCtx context.Context) {
		o.runFiltering(jobCtx, taskID, segments, in.UserID, in.Language, in.TargetLevel)
	}); err != nil {
		o.tracker.Fail(taskID, domain.NewDependencyError("worker pool", err))
		return "", fmt.Errorf("schedule task: %w", err)
	}
	return taskID, nil
}

// SubmitProcessing registers a task for the full pipeline over a media file.
func (o *Orchestrator) SubmitProcessing(ctx context.Context, in ProcessInput) (string, error) {
	if err := validateSubmission(in.UserID, in.Language, in.TargetLevel); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.MediaPath) == "" {
		return "", domain.NewValidationError("media_path", "must not be empty")
	}
	if in.NativeLanguage == "" {
		return "", domain.NewValidationError("native_language", "must not be empty")
	}

	taskID := uuid.NewString()
	o.tracker.Start(taskID, in.UserID)

	if err := o.pool.Submit(func(jobCtx context.Context) {
		o.runProcessing(jobCtx, taskID, in)
	}); err != nil {
		o.tracker.Fail(taskID, domain.NewDependencyError("worker pool", err))
		return "", fmt.Errorf("schedule task: %w", err)
	}
	return taskID, nil
}

// MarkKnown records newly known lemmas for the learner and recomputes the
// blocker partition of a completed task without re-running the pipeline.
func (o *Orchestrator) MarkKnown(ctx context.Context, taskID, userID string, lemmas []string) (domain.RefilterResult, error) {
	// Normalized once here so the stored known set and the refilter
	// comparison key can never drift.
	normalized := make([]string, 0, len(lemmas))
	for _, lemma := range lemmas {
		if n := domain.NormalizeWord(lemma); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return domain.RefilterResult{}, domain.NewValidationError("lemmas", "must not be empty")
	}

	task, err := o.tracker.Get(taskID)
	if err != nil {
		return domain.RefilterResult{}, err
	}
	if task.UserID != userID {
		return domain.RefilterResult{}, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	if task.Status != domain.TaskStatusCompleted || task.Result == nil {
		return domain.RefilterResult{}, domain.NewValidationError("task_id", "task has no completed result")
	}

	language := task.Result.Statistics.Language
	if err := o.knownWords.MarkKnown(ctx, userID, language, normalized); err != nil {
		return domain.RefilterResult{}, fmt.Errorf("mark known: %w", err)
	}

	return filtering.Refilter(task.Result, normalized), nil
}

func (o *Orchestrator) runFiltering(ctx context.Context, taskID string, segments []domain.TimedSegment, userID, language string, targetLevel domain.LanguageLevel) {
	o.tracker.Advance(taskID, 10, "parse", segmentsMessage("parsed", segments, o.reportWarnings(taskID, segments)))

	result, err := o.filter.Filter(ctx, segments, userID, language, targetLevel)
	if err != nil {
		o.tracker.Fail(taskID, err)
		return
	}
	o.tracker.Advance(taskID, 80, "classify", "classification complete")

	o.persistAndComplete(taskID, segments, result, language)
}

func (o *Orchestrator) runProcessing(ctx context.Context, taskID string, in ProcessInput) {
	o.tracker.Advance(taskID, 5, "transcribe", "transcription started")

	segments, err := o.transcriber.Transcribe(ctx, in.MediaPath, in.Language)
	if err != nil {
		o.tracker.Fail(taskID, err)
		return
	}
	o.tracker.Advance(taskID, 40, "transcribe", segmentsMessage("transcribed", segments, o.reportWarnings(taskID, segments)))

	for i := range segments {
		translated, err := o.translator.Translate(ctx, segments[i].OriginalText, in.Language, in.NativeLanguage)
		if err != nil {
			o.tracker.Fail(taskID, err)
			return
		}
		segments[i].Translation = translated
	}
	o.tracker.Advance(taskID, 60, "translate", "translation complete")

	result, err := o.filter.Filter(ctx, segments, in.UserID, in.Language, in.TargetLevel)
	if err != nil {
		o.tracker.Fail(taskID, err)
		return
	}
	o.tracker.Advance(taskID, 90, "classify", "classification complete")

	o.persistAndComplete(taskID, segments, result, in.Language)
}

// persistAndComplete writes the result document and the highlighted subtitle
// companion, then transitions the task to completed.
func (o *Orchestrator) persistAndComplete(taskID string, segments []domain.TimedSegment, result *domain.FilteringResult, language string) {
	items := filtering.AllVocabularyItems(result, language)

	doc := artifact.Document{
		TotalSubtitles: result.Statistics.TotalSubtitles,
		Items:          items,
		Statistics:     result.Statistics,
	}
	path, err := o.artifacts.WriteResult(taskID, doc)
	if err != nil {
		o.tracker.Fail(taskID, err)
		return
	}

	// Surface forms and lemmas both match so inflected occurrences highlight.
	vocabulary := make(map[string]struct{}, len(items)*2)
	for _, item := range items {
		vocabulary[item.Lemma] = struct{}{}
		vocabulary[domain.NormalizeWord(item.Word)] = struct{}{}
	}
	highlighted := subtitle.Serialize(subtitle.Highlight(segments, vocabulary))
	if _, err := o.artifacts.WriteHighlighted(taskID, highlighted); err != nil {
		o.tracker.Fail(taskID, err)
		return
	}

	o.tracker.Advance(taskID, 95, "persist", "artifacts written")
	o.tracker.Complete(taskID, result, path)
}

// reportWarnings logs non-fatal subtitle warnings for a task and returns how
// many there were. Warnings never fail the task.
func (o *Orchestrator) reportWarnings(taskID string, segments []domain.TimedSegment) int {
	warnings := subtitle.Validate(segments)
	for _, w := range warnings {
		o.log.Warn("subtitle warning",
			slog.String("task_id", taskID),
			slog.String("kind", string(w.Kind)),
			slog.Int("segment", w.Index),
			slog.String("message", w.Message),
		)
	}
	return len(warnings)
}

func segmentsMessage(verb string, segments []domain.TimedSegment, warningCount int) string {
	if warningCount > 0 {
		return fmt.Sprintf("%s %d segments, %d warnings", verb, len(segments), warningCount)
	}
	return fmt.Sprintf("%s %d segments", verb, len(segments))
}

func validateSubmission(userID, language string, level domain.LanguageLevel) error {
	var errs []domain.FieldError
	if userID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "must not be empty"})
	}
	if language == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must not be empty"})
	}
	if !level.IsValid() || level == domain.LevelUnknown {
		errs = append(errs, domain.FieldError{Field: "target_level", Message: "must be a CEFR level A1..C2"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
