// Package subtitle handles subtitle track selection and payload fetching.
package subtitle

import (
	"fmt"
	"net/http"
	"strings"

	"beenama/internal/httputil"
	"beenama/internal/media"
)

// Filter returns subtitle tracks matching the preferred language (case-insensitive).
func Filter(tracks []media.SubtitleTrack, language string) []media.SubtitleTrack {
	if language == "" {
		return tracks
	}

	lang := strings.ToLower(language)
	var matched []media.SubtitleTrack

	for _, t := range tracks {
		if strings.Contains(strings.ToLower(t.Language), lang) ||
			strings.Contains(strings.ToLower(t.Label), lang) {
			matched = append(matched, t)
		}
	}

	return matched
}

// BestMatch returns the best matching subtitle track for the given language.
// Prefers exact language match, then partial match, then SDH variants.
func BestMatch(tracks []media.SubtitleTrack, language string) *media.SubtitleTrack {
	filtered := Filter(tracks, language)
	if len(filtered) == 0 {
		return nil
	}

	lang := strings.ToLower(language)

	// Prefer non-SDH exact match
	for _, t := range filtered {
		label := strings.ToLower(t.Label)
		if strings.Contains(label, lang) && !strings.Contains(label, "sdh") {
			return &t
		}
	}

	// Fall back to first match
	return &filtered[0]
}

// Fetcher downloads timed-text payloads for tracks.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a subtitle fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{client: httputil.NewClient()}
}

// Fetch downloads a track's raw timed-text payload into memory.
// The payload is parsed by the player; nothing touches disk.
func (f *Fetcher) Fetch(track media.SubtitleTrack) (string, error) {
	if err := httputil.ValidateURL(track.URL); err != nil {
		return "", fmt.Errorf("invalid subtitle URL: %w", err)
	}

	data, err := httputil.FetchLimited(f.client, track.URL)
	if err != nil {
		return "", fmt.Errorf("downloading subtitle %q: %w", track.Label, err)
	}

	return string(data), nil
}
