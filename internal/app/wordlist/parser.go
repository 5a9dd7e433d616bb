// Package wordlist parses dictionary word list CSV files into vocabulary
// records. Pure function: reader in, domain structs out. No database
// dependencies.
package wordlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// Columns: word,lemma,level,part_of_speech,gender,translations,frequency_rank.
// Only word is required. Translations are separated by semicolons.
const (
	colWord = iota
	colLemma
	colLevel
	colPartOfSpeech
	colGender
	colTranslations
	colFrequencyRank
)

// Parse reads a word list CSV for one language. The first row is a header
// and is skipped. Rows with an empty word column are skipped; a malformed
// frequency rank or unknown level fails the whole parse so a bad file never
// half-imports.
func Parse(r io.Reader, language string) ([]domain.VocabularyWord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var words []domain.VocabularyWord
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row++

		word, err := parseRow(record, language)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if word == nil {
			continue
		}
		words = append(words, *word)
	}

	return words, nil
}

func parseRow(record []string, language string) (*domain.VocabularyWord, error) {
	word := domain.NormalizeWord(field(record, colWord))
	if word == "" {
		return nil, nil
	}

	lemma := domain.NormalizeWord(field(record, colLemma))
	if lemma == "" {
		lemma = word
	}

	level := domain.LevelUnknown
	if raw := field(record, colLevel); raw != "" {
		level = domain.LanguageLevel(strings.ToUpper(raw))
		if !level.IsValid() {
			return nil, fmt.Errorf("invalid level %q", raw)
		}
	}

	entry := &domain.VocabularyWord{
		Word:     word,
		Lemma:    lemma,
		Language: language,
		Level:    level,
	}

	if raw := field(record, colPartOfSpeech); raw != "" {
		pos := domain.PartOfSpeech(strings.ToUpper(raw))
		if !pos.IsValid() {
			return nil, fmt.Errorf("invalid part of speech %q", raw)
		}
		entry.PartOfSpeech = &pos
	}

	if raw := field(record, colGender); raw != "" {
		gender := strings.ToLower(raw)
		entry.Gender = &gender
	}

	if raw := field(record, colTranslations); raw != "" {
		for _, t := range strings.Split(raw, ";") {
			if t = strings.TrimSpace(t); t != "" {
				entry.Translations = append(entry.Translations, t)
			}
		}
	}

	if raw := field(record, colFrequencyRank); raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil || rank <= 0 {
			return nil, fmt.Errorf("invalid frequency rank %q", raw)
		}
		entry.FrequencyRank = &rank
	}

	return entry, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
