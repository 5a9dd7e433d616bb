package domain

// TimedSegment is one time-coded block of transcript text.
// Index is 1-based and sequential; EndTime is strictly after StartTime for
// well-formed input. Segments are immutable once parsed, except that
// Translation may be filled in by a later pipeline stage.
type TimedSegment struct {
	Index        int
	StartTime    float64 // seconds
	EndTime      float64 // seconds
	Text         string
	OriginalText string
	Translation  string
}

// Duration returns the segment length in seconds.
func (s TimedSegment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// ClassifiedSegment pairs a segment with the per-word decisions made for it.
type ClassifiedSegment struct {
	Segment     TimedSegment
	Words       []WordToken
	ActiveWords []WordToken
}

// ActiveCount returns the number of words classified ACTIVE in the segment.
func (c ClassifiedSegment) ActiveCount() int {
	return len(c.ActiveWords)
}
