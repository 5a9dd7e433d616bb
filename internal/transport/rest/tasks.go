package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/tasks"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	SubmitFiltering(ctx context.Context, in tasks.FilterInput) (string, error)
	SubmitProcessing(ctx context.Context, in tasks.ProcessInput) (string, error)
	MarkKnown(ctx context.Context, taskID, userID string, lemmas []string) (domain.RefilterResult, error)
}

// taskReader reads task progress snapshots for the poll endpoint.
type taskReader interface {
	Get(taskID string) (domain.TaskProgress, error)
}

// TaskHandler serves the task REST endpoints: submission, polling, and
// the mark-known refilter operation.
type TaskHandler struct {
	svc     taskService
	tracker taskReader
	log     *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, tracker taskReader, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, tracker: tracker, log: logger.With("handler", "tasks")}
}

type filterRequest struct {
	UserID       string `json:"user_id"`
	SubtitleText string `json:"subtitle_text"`
	Language     string `json:"language"`
	TargetLevel  string `json:"target_level"`
}

type processRequest struct {
	UserID         string `json:"user_id"`
	MediaPath      string `json:"media_path"`
	Language       string `json:"language"`
	NativeLanguage string `json:"native_language"`
	TargetLevel    string `json:"target_level"`
}

type markKnownRequest struct {
	TaskID string   `json:"task_id"`
	UserID string   `json:"user_id"`
	Lemmas []string `json:"lemmas"`
}

type taskAcceptedResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// Filter handles POST /api/v1/filter. A valid submission returns 202 with
// the task id; validation failures return 400 before any task exists.
func (h *TaskHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := h.svc.SubmitFiltering(r.Context(), tasks.FilterInput{
		UserID:       req.UserID,
		SubtitleText: req.SubtitleText,
		Language:     req.Language,
		TargetLevel:  domain.LanguageLevel(strings.ToUpper(req.TargetLevel)),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, taskAcceptedResponse{
		TaskID: taskID,
		Status: domain.TaskStatusProcessing.String(),
	})
}

// Process handles POST /api/v1/process, scheduling the full pipeline over a
// media file: transcription, translation, and filtering.
func (h *TaskHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := h.svc.SubmitProcessing(r.Context(), tasks.ProcessInput{
		UserID:         req.UserID,
		MediaPath:      req.MediaPath,
		Language:       req.Language,
		NativeLanguage: req.NativeLanguage,
		TargetLevel:    domain.LanguageLevel(strings.ToUpper(req.TargetLevel)),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, taskAcceptedResponse{
		TaskID: taskID,
		Status: domain.TaskStatusProcessing.String(),
	})
}

// Get handles GET /api/v1/tasks/{id}. It is the poll fallback and exposes
// the same snapshot the push channel delivers.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "missing task id")
		return
	}

	progress, err := h.tracker.Get(taskID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

// MarkKnown handles POST /api/v1/words/known: it records the lemmas as
// known for the learner and refilters the referenced completed task.
func (h *TaskHandler) MarkKnown(w http.ResponseWriter, r *http.Request) {
	var req markKnownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TaskID == "" {
		writeError(w, http.StatusBadRequest, "missing task_id")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing user_id")
		return
	}

	result, err := h.svc.MarkKnown(r.Context(), req.TaskID, req.UserID, req.Lemmas)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *TaskHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDependency):
		writeError(w, http.StatusServiceUnavailable, "a dependency is unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
