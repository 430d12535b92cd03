package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"beenama/internal/media"
)

// playerPayload is the JSON blob the embed page ships to its player.
type playerPayload struct {
	Title   string `json:"title"`
	Streams []struct {
		Name    string `json:"name"`
		Quality string `json:"quality"`
		URL     string `json:"url"`
	} `json:"streams"`
	Subtitles []struct {
		Label    string `json:"label"`
		Language string `json:"language"`
		URL      string `json:"url"`
	} `json:"subtitles"`
}

// parseStream extracts the player payload from an embed page.
// The page carries it in a JSON script tag; some variants inline it
// as a `const playerData = {...}` assignment instead. DOM parsing
// only, raw HTML is never eval'd or shelled out to.
func parseStream(doc *goquery.Document) (*media.Stream, error) {
	raw := doc.Find(`script[type="application/json"]#player-data`).Text()
	if raw == "" {
		raw = findInlinePayload(doc)
	}
	if raw == "" {
		return nil, fmt.Errorf("no player data found in embed page")
	}

	var payload playerPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parsing player data: %w", err)
	}
	if len(payload.Streams) == 0 {
		return nil, fmt.Errorf("embed page carries no streams")
	}

	stream := &media.Stream{
		Title: payload.Title,
		URL:   payload.Streams[0].URL,
	}
	for _, s := range payload.Streams {
		if s.URL == "" {
			continue
		}
		id := s.Quality
		if id == "" {
			id = s.Name
		}
		stream.Qualities = append(stream.Qualities, media.QualityVariant{
			ID:    id,
			Label: s.Name,
			URL:   s.URL,
		})
	}
	for i, sub := range payload.Subtitles {
		if sub.URL == "" {
			continue
		}
		stream.Subtitles = append(stream.Subtitles, media.SubtitleTrack{
			ID:       fmt.Sprintf("%s-%d", sub.Language, i),
			Label:    sub.Label,
			Language: sub.Language,
			URL:      sub.URL,
		})
	}
	return stream, nil
}

// findInlinePayload scans inline scripts for the playerData
// assignment and slices out its balanced JSON object.
func findInlinePayload(doc *goquery.Document) string {
	var found string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		idx := strings.Index(text, "playerData")
		if idx == -1 {
			return true
		}
		start := strings.Index(text[idx:], "{")
		if start == -1 {
			return true
		}
		if obj := balancedObject(text[idx+start:]); obj != "" {
			found = obj
			return false
		}
		return true
	})
	return found
}

// balancedObject returns the prefix of s spanning one brace-balanced
// JSON object, respecting string literals and escapes.
func balancedObject(s string) string {
	depth := 0
	inString := false
	escaped := false
	for i, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1]
				}
			}
		}
	}
	return ""
}
