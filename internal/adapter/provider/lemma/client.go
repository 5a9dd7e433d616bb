// Package lemma is the HTTP adapter for the lemmatization model service.
package lemma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client calls the lemmatizer over HTTP. For a fixed model version the
// service is deterministic: the same (word, language) always yields the
// same lemma.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the lemmatizer at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "lemma"),
	}
}

type lemmatizeRequest struct {
	Word     string `json:"word"`
	Language string `json:"language"`
}

type lemmatizeResponse struct {
	Lemma string `json:"lemma"`
}

// Lemmatize returns the base form of a word. Failures are typed
// DependencyError so the classifier can fall back to the surface form.
func (c *Client) Lemmatize(ctx context.Context, word, language string) (string, error) {
	payload, err := json.Marshal(lemmatizeRequest{Word: word, Language: language})
	if err != nil {
		return "", fmt.Errorf("lemma: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/lemmatize", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("lemma: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "lemmatize request", slog.String("word", word), slog.String("language", language))

	resp, err := c.doWithRetry(ctx, req, payload)
	if err != nil {
		return "", domain.NewDependencyError("lemmatizer", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewDependencyError("lemmatizer", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewDependencyError("lemmatizer", fmt.Errorf("read body: %w", err))
	}

	var decoded lemmatizeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", domain.NewDependencyError("lemmatizer", fmt.Errorf("decode json: %w", err))
	}
	if decoded.Lemma == "" {
		return "", domain.NewDependencyError("lemmatizer", fmt.Errorf("empty lemma for %q", word))
	}

	return domain.NormalizeWord(decoded.Lemma), nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The body is rebuilt for the retry since the first attempt may have
// consumed it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, payload []byte) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "lemmatize retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(payload))
	return c.httpClient.Do(retry)
}
