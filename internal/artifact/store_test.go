package artifact

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_WriteReadResult(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	doc := Document{
		TotalSubtitles: 3,
		Items: []domain.VocabularyItem{
			{Word: "hund", Lemma: "hund", Language: "de", Level: domain.LevelA1, Occurrences: 2},
		},
		Statistics: domain.FilteringStatistics{TotalSubtitles: 3, Language: "de", Level: domain.LevelA2},
	}

	path, err := store.WriteResult("task-1", doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.dir, "task-1", "result.json"), path)

	got, err := store.ReadResult("task-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestStore_ReadResult_NotFound(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	_, err = store.ReadResult("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_WriteHighlighted(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	path, err := store.WriteHighlighted("task-1", "1\n00:00:00,000 --> 00:00:02,000\nDer <b>Hund</b>\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.dir, "task-1", "highlighted.srt"), path)
}
