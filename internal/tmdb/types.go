package tmdb

import (
	"beenama/internal/media"
)

// summaryDTO is the shared shape of catalog cards across trending,
// discover, search, recommendation, and list responses. Movies carry
// title/release_date, TV carries name/first_air_date.
type summaryDTO struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// toSummary maps a DTO to the internal type. fallback supplies the
// media type for endpoints whose responses omit media_type.
func (d summaryDTO) toSummary(fallback media.MediaType) media.Summary {
	mt := fallback
	if d.MediaType != "" {
		if parsed, err := media.ParseMediaType(d.MediaType); err == nil {
			mt = parsed
		}
	}

	title := d.Title
	date := d.ReleaseDate
	if title == "" {
		title = d.Name
		date = d.FirstAirDate
	}

	year := ""
	if len(date) >= 4 {
		year = date[:4]
	}

	return media.Summary{
		ID:         d.ID,
		Type:       mt,
		Title:      title,
		Year:       year,
		Overview:   d.Overview,
		PosterPath: d.PosterPath,
		Rating:     d.VoteAverage,
		GenreIDs:   d.GenreIDs,
	}
}

// pagedResults is the common paged envelope.
type pagedResults struct {
	Page         int          `json:"page"`
	Results      []summaryDTO `json:"results"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
}

func (p pagedResults) toSummaries(fallback media.MediaType) []media.Summary {
	out := make([]media.Summary, 0, len(p.Results))
	for _, r := range p.Results {
		s := r.toSummary(fallback)
		if s.Title == "" {
			continue // People in multi-search results have no title
		}
		out = append(out, s)
	}
	return out
}

type genreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type castDTO struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type seasonDTO struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
}

type detailsDTO struct {
	summaryDTO
	Tagline             string     `json:"tagline"`
	Runtime             int        `json:"runtime"`
	Status              string     `json:"status"`
	Genres              []genreDTO `json:"genres"`
	Seasons             []seasonDTO `json:"seasons"`
	BelongsToCollection *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"belongs_to_collection"`
	Credits struct {
		Cast []castDTO `json:"cast"`
	} `json:"credits"`
	Recommendations struct {
		Results []summaryDTO `json:"results"`
	} `json:"recommendations"`
}

func (d detailsDTO) toDetails(mt media.MediaType) media.Details {
	det := media.Details{
		Summary:        d.summaryDTO.toSummary(mt),
		Tagline:        d.Tagline,
		RuntimeMinutes: d.Runtime,
		Status:         d.Status,
	}
	det.GenreIDs = nil
	for _, g := range d.Genres {
		det.Genres = append(det.Genres, media.Genre{ID: g.ID, Name: g.Name})
		det.GenreIDs = append(det.GenreIDs, g.ID)
	}
	for _, c := range d.Credits.Cast {
		det.Cast = append(det.Cast, media.CastMember{Name: c.Name, Character: c.Character})
	}
	for _, r := range d.Recommendations.Results {
		det.Recommendations = append(det.Recommendations, r.toSummary(mt))
	}
	for _, s := range d.Seasons {
		det.Seasons = append(det.Seasons, media.Season{
			Number:       s.SeasonNumber,
			Name:         s.Name,
			EpisodeCount: s.EpisodeCount,
		})
	}
	if d.BelongsToCollection != nil {
		det.Collection = &media.CollectionRef{
			ID:   d.BelongsToCollection.ID,
			Name: d.BelongsToCollection.Name,
		}
	}
	return det
}

type episodeDTO struct {
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
	Runtime       int     `json:"runtime"`
}

type seasonDetailsDTO struct {
	SeasonNumber int          `json:"season_number"`
	Episodes     []episodeDTO `json:"episodes"`
}

func (d seasonDetailsDTO) toSeasonDetails() media.SeasonDetails {
	sd := media.SeasonDetails{Number: d.SeasonNumber}
	for _, e := range d.Episodes {
		sd.Episodes = append(sd.Episodes, media.Episode{
			Number:  e.EpisodeNumber,
			Name:    e.Name,
			AirDate: e.AirDate,
			Rating:  e.VoteAverage,
			Runtime: e.Runtime,
		})
	}
	return sd
}

type collectionDTO struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Overview string       `json:"overview"`
	Parts    []summaryDTO `json:"parts"`
}

type listDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// statusResponse is TMDB's generic success envelope.
type statusResponse struct {
	Success       bool   `json:"success"`
	StatusMessage string `json:"status_message"`
}
