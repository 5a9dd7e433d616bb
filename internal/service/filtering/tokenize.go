package filtering

import (
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// Tokenize splits a segment's text into word tokens. Token time windows are
// distributed linearly across the segment duration; punctuation stays on the
// surface form and is stripped during normalization.
func Tokenize(segment domain.TimedSegment) []domain.WordToken {
	fields := strings.Fields(segment.Text)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]domain.WordToken, 0, len(fields))
	step := segment.Duration() / float64(len(fields))
	for i, field := range fields {
		tokens = append(tokens, domain.WordToken{
			Text:      field,
			StartTime: segment.StartTime + float64(i)*step,
			EndTime:   segment.StartTime + float64(i+1)*step,
		})
	}
	return tokens
}
