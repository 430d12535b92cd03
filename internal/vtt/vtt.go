// Package vtt parses WebVTT-style timed-text payloads and resolves the
// active cue for a playback position.
package vtt

import (
	"regexp"
	"strconv"
	"strings"

	"beenama/internal/log"
)

// Cue is a single timestamped subtitle span. Times are in seconds.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// Matches a time-range line like "00:00:01.000 --> 00:00:03.000".
// Cue settings after the end timestamp are tolerated and ignored.
var timeRangeRe = regexp.MustCompile(`^(\S+)\s+-->\s+(\S+)`)

// Parse converts a raw WebVTT payload into an ordered cue sequence.
// Cues keep source order. A malformed time token skips that cue only;
// parsing never fails as a whole.
func Parse(raw string) []Cue {
	var cues []Cue

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var current *Cue
	var text []string

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimSpace(strings.Join(text, "\n"))
		cues = append(cues, *current)
		current = nil
		text = nil
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := timeRangeRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			start, err1 := parseTimestamp(m[1])
			end, err2 := parseTimestamp(m[2])
			if err1 != nil || err2 != nil {
				log.Debugf("vtt: skipping malformed cue at line %d: %q", i+1, trimmed)
				continue
			}
			current = &Cue{Start: start, End: end}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		// The format identifier header is never cue text.
		if current == nil {
			continue
		}
		// Keep the raw line: only the joined text is trimmed, so
		// indentation inside a multi-line cue survives.
		text = append(text, line)
	}
	flush()

	return cues
}

// parseTimestamp decodes HH:MM:SS.mmm (or MM:SS.mmm) into seconds.
func parseTimestamp(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 2 {
		parts = append([]string{"0"}, parts...)
	}
	if len(parts) != 3 {
		return 0, &ParseError{Token: s}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ParseError{Token: s}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &ParseError{Token: s}
	}

	secPart, msPart, _ := strings.Cut(parts[2], ".")
	seconds, err := strconv.Atoi(secPart)
	if err != nil {
		return 0, &ParseError{Token: s}
	}
	millis := 0
	if msPart != "" {
		millis, err = strconv.Atoi(msPart)
		if err != nil {
			return 0, &ParseError{Token: s}
		}
	}

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000, nil
}

// ParseError reports a malformed time token within a cue.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return "malformed time token " + strconv.Quote(e.Token)
}

// ActiveCue returns the cue that should be displayed at the given
// playback position, honoring a caption delay offset. When cues
// overlap, the first match in source order wins. The boolean is false
// when no cue covers the position.
func ActiveCue(positionSeconds, delaySeconds float64, cues []Cue) (Cue, bool) {
	effective := positionSeconds - delaySeconds
	for _, c := range cues {
		if c.Start <= effective && effective <= c.End {
			return c, true
		}
	}
	return Cue{}, false
}
