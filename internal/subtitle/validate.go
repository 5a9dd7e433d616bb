package subtitle

import "github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"

// WarningKind classifies non-fatal issues found in parsed segments.
type WarningKind string

const (
	WarningOverlap     WarningKind = "overlap"
	WarningNonPositive WarningKind = "non_positive_duration"
	WarningEmptyText   WarningKind = "empty_text"
)

// Warning describes a suspicious but tolerable condition in one segment.
// Warnings never fail a parse.
type Warning struct {
	Kind    WarningKind
	Index   int
	Message string
}

// Validate inspects parsed segments and reports non-fatal warnings:
// overlapping time ranges, non-positive durations and empty text.
func Validate(segments []domain.TimedSegment) []Warning {
	var warnings []Warning
	for i, seg := range segments {
		if seg.EndTime <= seg.StartTime {
			warnings = append(warnings, Warning{
				Kind:    WarningNonPositive,
				Index:   seg.Index,
				Message: "end time is not after start time",
			})
		}
		if seg.Text == "" && seg.OriginalText == "" {
			warnings = append(warnings, Warning{
				Kind:    WarningEmptyText,
				Index:   seg.Index,
				Message: "segment has no text",
			})
		}
		if i > 0 && seg.StartTime < segments[i-1].EndTime {
			warnings = append(warnings, Warning{
				Kind:    WarningOverlap,
				Index:   seg.Index,
				Message: "segment starts before the previous one ends",
			})
		}
	}
	return warnings
}
