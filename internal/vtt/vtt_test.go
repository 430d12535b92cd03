package vtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVTT = "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\nHello\n\n00:00:05.000 --> 00:00:07.000\nWorld"

func TestParse(t *testing.T) {
	cues := Parse(sampleVTT)

	require.Len(t, cues, 2)
	assert.Equal(t, Cue{Start: 1, End: 3, Text: "Hello"}, cues[0])
	assert.Equal(t, Cue{Start: 5, End: 7, Text: "World"}, cues[1])
}

func TestParseMultilineText(t *testing.T) {
	raw := "WEBVTT\n\n00:00:01.500 --> 00:00:04.250\nfirst line\nsecond line\n\n00:01:00.000 --> 00:01:02.000\nnext"

	cues := Parse(raw)

	require.Len(t, cues, 2)
	assert.Equal(t, "first line\nsecond line", cues[0].Text)
	assert.InDelta(t, 1.5, cues[0].Start, 1e-9)
	assert.InDelta(t, 4.25, cues[0].End, 1e-9)
	assert.InDelta(t, 60.0, cues[1].Start, 1e-9)
}

func TestParseKeepsInnerIndentation(t *testing.T) {
	// Only the joined text is trimmed; indentation on inner lines
	// is part of the cue.
	raw := "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\n  outer trimmed  \n    inner kept"

	cues := Parse(raw)

	require.Len(t, cues, 1)
	assert.Equal(t, "outer trimmed  \n    inner kept", cues[0].Text)
}

func TestParseHeaderNeverCueText(t *testing.T) {
	cues := Parse("WEBVTT\nsome: header\n\n00:00:01.000 --> 00:00:02.000\nonly text")

	require.Len(t, cues, 1)
	assert.Equal(t, "only text", cues[0].Text)
}

func TestParseSkipsMalformedCue(t *testing.T) {
	raw := "WEBVTT\n\n00:00:xx.000 --> 00:00:03.000\nbroken\n\n00:00:05.000 --> 00:00:07.000\nintact"

	cues := Parse(raw)

	require.Len(t, cues, 1)
	assert.Equal(t, "intact", cues[0].Text)
}

func TestParseCueWithoutBlankSeparator(t *testing.T) {
	// A time-range line closes the previous cue even without a blank line.
	raw := "00:00:01.000 --> 00:00:02.000\nfirst\n00:00:03.000 --> 00:00:04.000\nsecond"

	cues := Parse(raw)

	require.Len(t, cues, 2)
	assert.Equal(t, "first", cues[0].Text)
	assert.Equal(t, "second", cues[1].Text)
}

func TestParseIdempotent(t *testing.T) {
	first := Parse(sampleVTT)
	second := Parse(sampleVTT)
	assert.Equal(t, first, second)
}

func TestParseEmptyAndHeaderOnly(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("WEBVTT\n"))
}

func TestParseCueSettingsIgnored(t *testing.T) {
	cues := Parse("00:00:01.000 --> 00:00:03.000 line:85% align:center\ntext")

	require.Len(t, cues, 1)
	assert.InDelta(t, 1.0, cues[0].Start, 1e-9)
	assert.InDelta(t, 3.0, cues[0].End, 1e-9)
}

func TestActiveCue(t *testing.T) {
	cues := Parse(sampleVTT)

	cue, ok := ActiveCue(2, 0, cues)
	require.True(t, ok)
	assert.Equal(t, "Hello", cue.Text)

	_, ok = ActiveCue(4, 0, cues)
	assert.False(t, ok)

	cue, ok = ActiveCue(5, 0, cues)
	require.True(t, ok)
	assert.Equal(t, "World", cue.Text)
}

func TestActiveCueBoundsInclusive(t *testing.T) {
	cues := []Cue{{Start: 1, End: 3, Text: "a"}}

	_, ok := ActiveCue(0.999, 0, cues)
	assert.False(t, ok)

	for _, pos := range []float64{1, 2, 3} {
		_, ok := ActiveCue(pos, 0, cues)
		assert.True(t, ok, "position %v should be inside the cue", pos)
	}
}

func TestActiveCueDelay(t *testing.T) {
	cues := []Cue{{Start: 1, End: 3, Text: "a"}}

	// With a +2s delay the cue appears two seconds later.
	_, ok := ActiveCue(2, 2, cues)
	assert.False(t, ok)

	cue, ok := ActiveCue(4, 2, cues)
	require.True(t, ok)
	assert.Equal(t, "a", cue.Text)

	// A negative delay shifts it earlier.
	_, ok = ActiveCue(0.5, -1, cues)
	assert.True(t, ok)
}

func TestActiveCueOverlapPrefersSourceOrder(t *testing.T) {
	cues := []Cue{
		{Start: 1, End: 10, Text: "first"},
		{Start: 2, End: 5, Text: "second"},
	}

	cue, ok := ActiveCue(3, 0, cues)
	require.True(t, ok)
	assert.Equal(t, "first", cue.Text)
}

func TestActiveCueToleratesOutOfOrderCues(t *testing.T) {
	cues := []Cue{
		{Start: 10, End: 12, Text: "late"},
		{Start: 1, End: 3, Text: "early"},
	}

	cue, ok := ActiveCue(2, 0, cues)
	require.True(t, ok)
	assert.Equal(t, "early", cue.Text)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:00:01.000", 1, false},
		{"01:02:03.500", 3723.5, false},
		{"02:03.250", 123.25, false}, // MM:SS.mmm shorthand
		{"00:00:05", 5, false},
		{"00:00:aa.000", 0, true},
		{"nonsense", 0, true},
	}

	for _, tt := range tests {
		got, err := parseTimestamp(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}
