// Package provider resolves TMDB catalog entries into playable
// streams by scraping embed sources.
package provider

import (
	"beenama/internal/media"
)

// Provider resolves a catalog item into a playback source. For
// movies, season and episode are zero.
type Provider interface {
	Resolve(mt media.MediaType, tmdbID int64, season, episode int) (*media.Stream, error)
}
