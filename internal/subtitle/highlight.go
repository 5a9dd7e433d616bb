package subtitle

import (
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const (
	highlightOpen  = "<b>"
	highlightClose = "</b>"
)

// Highlight returns a copy of the segments where every token whose
// normalized form (or lemma) appears in vocabulary is wrapped in an inline
// highlight marker. The input segments are not modified.
func Highlight(segments []domain.TimedSegment, vocabulary map[string]struct{}) []domain.TimedSegment {
	out := make([]domain.TimedSegment, len(segments))
	for i, seg := range segments {
		out[i] = seg
		out[i].Text = highlightText(seg.Text, vocabulary)
	}
	return out
}

func highlightText(text string, vocabulary map[string]struct{}) string {
	if len(vocabulary) == 0 {
		return text
	}
	fields := strings.Fields(text)
	for i, field := range fields {
		if _, ok := vocabulary[domain.NormalizeWord(field)]; ok {
			fields[i] = highlightOpen + field + highlightClose
		}
	}
	return strings.Join(fields, " ")
}
