package transcribe

import (
	"context"
	"errors"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

var errNotConfigured = errors.New("no transcription endpoint configured")

// Disabled stands in when no transcription endpoint is configured. Every
// call fails as a dependency error, so media processing tasks fail cleanly
// while subtitle filtering keeps working.
type Disabled struct{}

// NewDisabled creates a Disabled transcriber.
func NewDisabled() *Disabled { return &Disabled{} }

func (*Disabled) Transcribe(_ context.Context, _, _ string) ([]domain.TimedSegment, error) {
	return nil, domain.NewDependencyError("transcriber", errNotConfigured)
}
