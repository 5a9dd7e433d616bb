package domain

// WordStatus represents the classification of a word for a specific learner.
type WordStatus string

const (
	// WordStatusActive marks a word the learner does not know yet.
	WordStatusActive WordStatus = "ACTIVE"
	// WordStatusKnown marks a word whose lemma is in the learner's known set.
	WordStatusKnown WordStatus = "KNOWN"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusActive, WordStatusKnown:
		return true
	}
	return false
}

// LanguageLevel is a CEFR proficiency level (A1 easiest .. C2 hardest).
// LevelUnknown is used for words without a dictionary record.
type LanguageLevel string

const (
	LevelA1      LanguageLevel = "A1"
	LevelA2      LanguageLevel = "A2"
	LevelB1      LanguageLevel = "B1"
	LevelB2      LanguageLevel = "B2"
	LevelC1      LanguageLevel = "C1"
	LevelC2      LanguageLevel = "C2"
	LevelUnknown LanguageLevel = "UNKNOWN"
)

func (l LanguageLevel) String() string { return string(l) }

func (l LanguageLevel) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2, LevelUnknown:
		return true
	}
	return false
}

// Rank returns the ordinal position of the level (A1=1 .. C2=6).
// LevelUnknown and invalid levels rank 0, sorting below every real level.
func (l LanguageLevel) Rank() int {
	switch l {
	case LevelA1:
		return 1
	case LevelA2:
		return 2
	case LevelB1:
		return 3
	case LevelB2:
		return 4
	case LevelC1:
		return 5
	case LevelC2:
		return 6
	}
	return 0
}

// AtOrBelow reports whether l is a real level at or below target.
// LevelUnknown is never at or below anything.
func (l LanguageLevel) AtOrBelow(target LanguageLevel) bool {
	return l.Rank() > 0 && target.Rank() > 0 && l.Rank() <= target.Rank()
}

// PartOfSpeech represents the grammatical category of a dictionary word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechOther:
		return true
	}
	return false
}

// TaskStatus represents the lifecycle state of a background task.
// Transitions: processing -> completed | failed. Both are terminal.
type TaskStatus string

const (
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusProcessing, TaskStatusCompleted, TaskStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}
