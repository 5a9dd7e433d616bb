package lemma

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Lemmatize_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lemmatize" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req lemmatizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Word != "läuft" || req.Language != "de" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lemma": "Laufen"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	lemma, err := c.Lemmatize(context.Background(), "läuft", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lemma != "laufen" {
		t.Errorf("lemma = %q, want %q (normalized)", lemma, "laufen")
	}
}

func TestClient_Lemmatize_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"lemma": "laufen"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	lemma, err := c.Lemmatize(context.Background(), "läuft", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lemma != "laufen" {
		t.Errorf("lemma = %q, want %q", lemma, "laufen")
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", calls.Load())
	}
}

func TestClient_Lemmatize_DependencyError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	_, err := c.Lemmatize(context.Background(), "läuft", "de")
	if !errors.Is(err, domain.ErrDependency) {
		t.Fatalf("error = %v, want ErrDependency", err)
	}

	var depErr *domain.DependencyError
	if !errors.As(err, &depErr) || depErr.Dependency != "lemmatizer" {
		t.Errorf("error does not name the lemmatizer: %v", err)
	}
}

func TestClient_Lemmatize_EmptyLemma(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lemma": ""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	_, err := c.Lemmatize(context.Background(), "läuft", "de")
	if !errors.Is(err, domain.ErrDependency) {
		t.Fatalf("error = %v, want ErrDependency", err)
	}
}
