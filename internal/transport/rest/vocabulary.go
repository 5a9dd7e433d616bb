package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const (
	defaultVocabularyLimit = 100
	maxVocabularyLimit     = 1000
)

// wordLister reads dictionary pages, normally through the cache.
type wordLister interface {
	GetWordsByLevel(ctx context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error)
}

// VocabularyHandler serves read-only dictionary listings.
type VocabularyHandler struct {
	words wordLister
	log   *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(words wordLister, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{words: words, log: logger.With("handler", "vocabulary")}
}

type vocabularyWordResponse struct {
	ID            string   `json:"id"`
	Word          string   `json:"word"`
	Lemma         string   `json:"lemma"`
	Language      string   `json:"language"`
	Level         string   `json:"level"`
	PartOfSpeech  *string  `json:"part_of_speech,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Translations  []string `json:"translations,omitempty"`
	FrequencyRank *int     `json:"frequency_rank,omitempty"`
}

type vocabularyListResponse struct {
	Words  []vocabularyWordResponse `json:"words"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// List handles GET /api/v1/vocabulary?language=de&level=A1&limit=100&offset=0.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	language := strings.TrimSpace(q.Get("language"))
	if language == "" {
		writeError(w, http.StatusBadRequest, "missing language")
		return
	}

	level := domain.LanguageLevel(strings.ToUpper(strings.TrimSpace(q.Get("level"))))
	if !level.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid level")
		return
	}

	limit, err := queryInt(q.Get("limit"), defaultVocabularyLimit)
	if err != nil || limit <= 0 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if limit > maxVocabularyLimit {
		limit = maxVocabularyLimit
	}
	offset, err := queryInt(q.Get("offset"), 0)
	if err != nil || offset < 0 {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	words, err := h.words.GetWordsByLevel(r.Context(), language, level, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := vocabularyListResponse{
		Words:  make([]vocabularyWordResponse, 0, len(words)),
		Limit:  limit,
		Offset: offset,
	}
	for _, word := range words {
		resp.Words = append(resp.Words, toVocabularyWordResponse(word))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *VocabularyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toVocabularyWordResponse(w domain.VocabularyWord) vocabularyWordResponse {
	resp := vocabularyWordResponse{
		ID:            w.ID.String(),
		Word:          w.Word,
		Lemma:         w.Lemma,
		Language:      w.Language,
		Level:         w.Level.String(),
		Gender:        w.Gender,
		Translations:  w.Translations,
		FrequencyRank: w.FrequencyRank,
	}
	if w.PartOfSpeech != nil {
		pos := w.PartOfSpeech.String()
		resp.PartOfSpeech = &pos
	}
	return resp
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
