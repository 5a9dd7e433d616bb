// Package subtitle parses and serializes time-coded subtitle text.
//
// The wire format is SubRip: blocks separated by blank lines, each block
// carrying a numeric index, a "HH:MM:SS,mmm --> HH:MM:SS,mmm" time range and
// one or more text lines. Parsing is best-effort: malformed blocks are
// skipped and only a fully empty result is an error.
package subtitle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const (
	timeSeparator = " --> "
	// dualLanguageDelimiter splits original text from its translation
	// inside a single subtitle line.
	dualLanguageDelimiter = "|"
)

// Parse converts raw subtitle text into ordered segments.
// Both LF and CRLF separators are accepted. Blocks with a non-numeric index,
// a missing time-range separator, or fewer than three lines are skipped.
// Returns domain.ErrValidation when no well-formed block survives.
func Parse(text string) ([]domain.TimedSegment, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var segments []domain.TimedSegment
	for _, block := range strings.Split(text, "\n\n") {
		seg, ok := parseBlock(block)
		if !ok {
			continue
		}
		seg.Index = len(segments) + 1
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("parse subtitles: no well-formed blocks: %w", domain.ErrValidation)
	}
	return segments, nil
}

// parseBlock parses a single subtitle block. ok is false for malformed input.
func parseBlock(block string) (domain.TimedSegment, bool) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) < 3 {
		return domain.TimedSegment{}, false
	}

	if _, err := strconv.Atoi(lines[0]); err != nil {
		return domain.TimedSegment{}, false
	}

	start, end, err := parseTimeRange(lines[1])
	if err != nil {
		return domain.TimedSegment{}, false
	}

	text := strings.Join(lines[2:], "\n")
	original, translation := splitDualLanguage(text)

	return domain.TimedSegment{
		StartTime:    start,
		EndTime:      end,
		Text:         original,
		OriginalText: original,
		Translation:  translation,
	}, true
}

// parseTimeRange parses "HH:MM:SS,mmm --> HH:MM:SS,mmm".
func parseTimeRange(line string) (float64, float64, error) {
	parts := strings.Split(line, timeSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time range %q: missing separator", line)
	}
	start, err := parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimestamp parses a fixed-width "HH:MM:SS,mmm" timestamp into seconds.
func parseTimestamp(ts string) (float64, error) {
	if len(ts) != 12 || ts[2] != ':' || ts[5] != ':' || ts[8] != ',' {
		return 0, fmt.Errorf("timestamp %q: want HH:MM:SS,mmm", ts)
	}
	hours, err := strconv.Atoi(ts[0:2])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: hours: %w", ts, err)
	}
	minutes, err := strconv.Atoi(ts[3:5])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: minutes: %w", ts, err)
	}
	seconds, err := strconv.Atoi(ts[6:8])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: seconds: %w", ts, err)
	}
	millis, err := strconv.Atoi(ts[9:12])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: millis: %w", ts, err)
	}
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("timestamp %q: out of range", ts)
	}
	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000, nil
}

// splitDualLanguage splits "original | translation" text. Without the
// delimiter the whole text is the original and the translation stays empty.
func splitDualLanguage(text string) (original, translation string) {
	idx := strings.Index(text, dualLanguageDelimiter)
	if idx < 0 {
		return text, ""
	}
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(dualLanguageDelimiter):])
}

// Serialize renders segments back into subtitle text. Indexes are re-emitted
// 1-based sequential regardless of the stored values, so
// Parse(Serialize(x)) == x modulo whitespace.
func Serialize(segments []domain.TimedSegment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("\n")
		b.WriteString(formatTimestamp(seg.StartTime))
		b.WriteString(timeSeparator)
		b.WriteString(formatTimestamp(seg.EndTime))
		b.WriteString("\n")
		b.WriteString(segmentText(seg))
		b.WriteString("\n")
	}
	return b.String()
}

// segmentText reassembles the display line, re-joining dual-language text.
func segmentText(seg domain.TimedSegment) string {
	text := seg.Text
	if text == "" {
		text = seg.OriginalText
	}
	if seg.Translation != "" {
		return text + " " + dualLanguageDelimiter + " " + seg.Translation
	}
	return text
}

// formatTimestamp renders seconds as fixed-width "HH:MM:SS,mmm".
func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int(seconds*1000 + 0.5)
	h := millis / 3_600_000
	millis -= h * 3_600_000
	m := millis / 60_000
	millis -= m * 60_000
	s := millis / 1000
	millis -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, millis)
}
