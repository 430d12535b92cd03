// Package media defines shared types for the beenama application.
package media

import "fmt"

// MediaType represents whether content is a movie or TV show.
type MediaType int

const (
	Movie MediaType = iota
	TV
)

func (m MediaType) String() string {
	switch m {
	case Movie:
		return "movie"
	case TV:
		return "tv"
	default:
		return "unknown"
	}
}

// ParseMediaType converts a TMDB media_type string.
func ParseMediaType(s string) (MediaType, error) {
	switch s {
	case "movie":
		return Movie, nil
	case "tv":
		return TV, nil
	default:
		return Movie, fmt.Errorf("unknown media type %q", s)
	}
}

// Summary is a single catalog card: one entry of a trending, discover,
// search, or list response.
type Summary struct {
	ID         int64
	Type       MediaType
	Title      string
	Year       string
	Overview   string
	PosterPath string
	Rating     float64 // Vote average, 0-10
	GenreIDs   []int64
}

// Genre is a TMDB genre tag.
type Genre struct {
	ID   int64
	Name string
}

// CollectionRef points to the collection a movie belongs to.
type CollectionRef struct {
	ID   int64
	Name string
}

// Details is the full detail payload for a movie or TV show.
type Details struct {
	Summary
	Tagline         string
	RuntimeMinutes  int // Movies only
	Genres          []Genre
	Cast            []CastMember
	Recommendations []Summary
	Seasons         []Season // TV only
	Collection      *CollectionRef
	Status          string // e.g. "Released", "Returning Series"
}

// CastMember is a single credited cast entry.
type CastMember struct {
	Name      string
	Character string
}

// Season describes one season of a TV show.
type Season struct {
	Number       int
	Name         string
	EpisodeCount int
}

// Episode describes one episode within a season.
type Episode struct {
	Number  int
	Name    string
	AirDate string // YYYY-MM-DD, empty if unannounced
	Rating  float64
	Runtime int // Minutes, 0 if unknown
}

// SeasonDetails is a season with its full episode list.
type SeasonDetails struct {
	Number   int
	Episodes []Episode
}

// Collection is a named group of movies (e.g. a film series).
type Collection struct {
	ID       int64
	Name     string
	Overview string
	Parts    []Summary
}

// QualityVariant is a discrete, pre-resolved alternate stream rendition.
// The set is fixed for a player's lifetime; switching reloads the source.
type QualityVariant struct {
	ID    string
	Label string
	URL   string
}

// SubtitleTrack is one selectable timed-text track. The "off" state is
// not a member of the set; it is an empty track ID.
type SubtitleTrack struct {
	ID       string
	Label    string
	Language string
	URL      string
}

// Stream is a resolved playback source.
type Stream struct {
	URL       string
	Title     string
	Qualities []QualityVariant
	Subtitles []SubtitleTrack
}

// Account describes the authenticated TMDB account.
type Account struct {
	ID       int64
	Username string
	Name     string
}

// CustomList is a user-created TMDB list.
type CustomList struct {
	ID        int64
	Name      string
	ItemCount int
}

// ResumeEntry records the last playback position for a piece of content.
type ResumeEntry struct {
	MediaID        int64
	Type           MediaType
	Title          string
	Season         int // 0 for movies
	Episode        int // 0 for movies
	PositionMillis int64
	DurationMillis int64
}
