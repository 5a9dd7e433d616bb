// Package artifact persists the result documents of finished filtering runs
// on the local filesystem, one directory per task.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const (
	resultFileName      = "result.json"
	highlightedFileName = "highlighted.srt"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Document is the persisted result of one filtering run.
type Document struct {
	TotalSubtitles int                        `json:"total_subtitles"`
	Items          []domain.VocabularyItem    `json:"items"`
	Statistics     domain.FilteringStatistics `json:"statistics"`
}

// Store reads and writes task artifacts under a base directory.
// Layout: <dir>/<task-id>/result.json plus <dir>/<task-id>/highlighted.srt.
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore creates a Store rooted at dir, creating it if missing.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &Store{
		dir: dir,
		log: logger.With("adapter", "artifact"),
	}, nil
}

// WriteResult persists the result document for a task and returns its path.
func (s *Store) WriteResult(taskID string, doc Document) (string, error) {
	taskDir := filepath.Join(s.dir, taskID)
	if err := os.MkdirAll(taskDir, dirPerm); err != nil {
		return "", fmt.Errorf("create task dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	path := filepath.Join(taskDir, resultFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}

	s.log.Debug("result written", slog.String("task_id", taskID), slog.String("path", path))
	return path, nil
}

// WriteHighlighted persists the highlighted subtitle companion for a task.
func (s *Store) WriteHighlighted(taskID, srt string) (string, error) {
	taskDir := filepath.Join(s.dir, taskID)
	if err := os.MkdirAll(taskDir, dirPerm); err != nil {
		return "", fmt.Errorf("create task dir: %w", err)
	}

	path := filepath.Join(taskDir, highlightedFileName)
	if err := os.WriteFile(path, []byte(srt), filePerm); err != nil {
		return "", fmt.Errorf("write highlighted subtitles: %w", err)
	}
	return path, nil
}

// ReadResult loads a previously persisted result document.
// Returns domain.ErrNotFound when no document exists for the task.
func (s *Store) ReadResult(taskID string) (Document, error) {
	path := filepath.Join(s.dir, taskID, resultFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("result for task %s: %w", taskID, domain.ErrNotFound)
		}
		return Document{}, fmt.Errorf("read result: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return doc, nil
}
