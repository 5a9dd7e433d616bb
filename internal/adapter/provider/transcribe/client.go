// Package transcribe is the HTTP adapter for the speech-to-text model
// service. Transcription is the slowest pipeline stage; the client timeout
// must cover whole-episode audio.
package transcribe

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

const defaultTimeout = 10 * time.Minute

// Client calls the transcription model over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the transcriber at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "transcribe"),
	}
}

type transcribeRequest struct {
	MediaPath string `json:"media_path"`
	Language  string `json:"language"`
}

type transcribeSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type transcribeResponse struct {
	Segments []transcribeSegment `json:"segments"`
}

// Transcribe converts a media file into time-coded segments. Segment indexes
// are assigned 1-based in transcription order.
func (c *Client) Transcribe(ctx context.Context, mediaPath, language string) ([]domain.TimedSegment, error) {
	payload, err := json.Marshal(transcribeRequest{MediaPath: mediaPath, Language: language})
	if err != nil {
		return nil, fmt.Errorf("transcribe: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("transcribe: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.InfoContext(ctx, "transcription started",
		slog.String("media_path", mediaPath),
		slog.String("language", language),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewDependencyError("transcriber", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewDependencyError("transcriber", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewDependencyError("transcriber", fmt.Errorf("read body: %w", err))
	}

	var decoded transcribeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, domain.NewDependencyError("transcriber", fmt.Errorf("decode json: %w", err))
	}

	segments := make([]domain.TimedSegment, len(decoded.Segments))
	for i, s := range decoded.Segments {
		segments[i] = domain.TimedSegment{
			Index:        i + 1,
			StartTime:    s.Start,
			EndTime:      s.End,
			Text:         s.Text,
			OriginalText: s.Text,
		}
	}

	c.log.InfoContext(ctx, "transcription finished", slog.Int("segments", len(segments)))
	return segments, nil
}
