package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

type wordListerMock struct {
	GetWordsByLevelFunc func(ctx context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error)
}

func (m *wordListerMock) GetWordsByLevel(ctx context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error) {
	return m.GetWordsByLevelFunc(ctx, language, level, limit, offset)
}

func TestVocabularyHandler_List(t *testing.T) {
	t.Parallel()

	rank := 12
	lister := &wordListerMock{
		GetWordsByLevelFunc: func(_ context.Context, language string, level domain.LanguageLevel, limit, offset int) ([]domain.VocabularyWord, error) {
			if language != "de" || level != domain.LevelA1 {
				t.Errorf("language = %q, level = %v", language, level)
			}
			if limit != 2 || offset != 4 {
				t.Errorf("limit = %d, offset = %d", limit, offset)
			}
			return []domain.VocabularyWord{
				{
					ID:            uuid.New(),
					Word:          "hund",
					Lemma:         "hund",
					Language:      "de",
					Level:         domain.LevelA1,
					Translations:  []string{"dog"},
					FrequencyRank: &rank,
				},
			}, nil
		},
	}
	h := NewVocabularyHandler(lister, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vocabulary?language=de&level=a1&limit=2&offset=4", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var resp vocabularyListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Words) != 1 || resp.Words[0].Word != "hund" {
		t.Errorf("words = %+v", resp.Words)
	}
	if resp.Limit != 2 || resp.Offset != 4 {
		t.Errorf("pagination echo = %d/%d", resp.Limit, resp.Offset)
	}
}

func TestVocabularyHandler_List_BadParams(t *testing.T) {
	t.Parallel()

	h := NewVocabularyHandler(&wordListerMock{}, discardLogger())

	tests := []struct {
		name  string
		query string
	}{
		{"missing language", "level=A1"},
		{"invalid level", "language=de&level=Z9"},
		{"invalid limit", "language=de&level=A1&limit=abc"},
		{"negative offset", "language=de&level=A1&offset=-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/vocabulary?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestVocabularyHandler_List_StoreError(t *testing.T) {
	t.Parallel()

	lister := &wordListerMock{
		GetWordsByLevelFunc: func(context.Context, string, domain.LanguageLevel, int, int) ([]domain.VocabularyWord, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := NewVocabularyHandler(lister, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vocabulary?language=de&level=A1", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
