package subtitle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,500
Der Hund läuft

2
00:00:04,000 --> 00:00:06,000
Ich bin hier
`

func TestParse_WellFormed(t *testing.T) {
	t.Parallel()

	segments, err := Parse(sampleSRT)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, 1, segments[0].Index)
	assert.InDelta(t, 1.0, segments[0].StartTime, 0.0001)
	assert.InDelta(t, 3.5, segments[0].EndTime, 0.0001)
	assert.Equal(t, "Der Hund läuft", segments[0].Text)
	assert.Empty(t, segments[0].Translation)

	assert.Equal(t, 2, segments[1].Index)
	assert.Equal(t, "Ich bin hier", segments[1].Text)
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()

	crlf := "1\r\n00:00:01,000 --> 00:00:02,000\r\nHallo Welt\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nGuten Tag\r\n"
	segments, err := Parse(crlf)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "Hallo Welt", segments[0].Text)
}

func TestParse_DualLanguage(t *testing.T) {
	t.Parallel()

	text := "1\n00:00:01,000 --> 00:00:02,000\nDer Hund läuft | The dog runs\n"
	segments, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	assert.Equal(t, "Der Hund läuft", segments[0].Text)
	assert.Equal(t, "Der Hund läuft", segments[0].OriginalText)
	assert.Equal(t, "The dog runs", segments[0].Translation)
}

func TestParse_SkipsMalformedBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "non-numeric index",
			input: "abc\n00:00:01,000 --> 00:00:02,000\nBroken\n\n1\n00:00:03,000 --> 00:00:04,000\nGood\n",
		},
		{
			name:  "missing arrow",
			input: "1\n00:00:01,000 00:00:02,000\nBroken\n\n2\n00:00:03,000 --> 00:00:04,000\nGood\n",
		},
		{
			name:  "too few lines",
			input: "1\n00:00:01,000 --> 00:00:02,000\n\n2\n00:00:03,000 --> 00:00:04,000\nGood\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			segments, err := Parse(tt.input)
			require.NoError(t, err, "one well-formed block must survive")
			require.Len(t, segments, 1)
			assert.Equal(t, "Good", segments[0].Text)
			assert.Equal(t, 1, segments[0].Index, "surviving segment is re-indexed")
		})
	}
}

func TestParse_AllMalformed(t *testing.T) {
	t.Parallel()

	_, err := Parse("garbage\nnothing useful\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestParse_SerializeRoundTrip(t *testing.T) {
	t.Parallel()

	original, err := Parse(sampleSRT)
	require.NoError(t, err)

	reparsed, err := Parse(Serialize(original))
	require.NoError(t, err)
	require.Len(t, reparsed, len(original))

	for i := range original {
		assert.Equal(t, original[i].Index, reparsed[i].Index)
		assert.InDelta(t, original[i].StartTime, reparsed[i].StartTime, 0.0005)
		assert.InDelta(t, original[i].EndTime, reparsed[i].EndTime, 0.0005)
		assert.Equal(t, original[i].Text, reparsed[i].Text)
	}
}

func TestSerialize_DualLanguageRoundTrip(t *testing.T) {
	t.Parallel()

	segments := []domain.TimedSegment{
		{Index: 1, StartTime: 0, EndTime: 2.25, Text: "Der Hund läuft", OriginalText: "Der Hund läuft", Translation: "The dog runs"},
	}

	reparsed, err := Parse(Serialize(segments))
	require.NoError(t, err)
	require.Len(t, reparsed, 1)
	assert.Equal(t, "Der Hund läuft", reparsed[0].Text)
	assert.Equal(t, "The dog runs", reparsed[0].Translation)
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "00:00:00,000", want: 0},
		{input: "00:01:02,500", want: 62.5},
		{input: "01:00:00,001", want: 3600.001},
		{input: "10:59:59,999", want: 39599.999},
		{input: "00:60:00,000", wantErr: true},
		{input: "0:00:00,000", wantErr: true},
		{input: "00:00:00.000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseTimestamp(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
