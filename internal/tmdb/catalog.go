package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"beenama/internal/media"
)

// DiscoverFilters narrows a Discover query. Zero values are omitted.
type DiscoverFilters struct {
	SortBy   string  // Defaults to popularity.desc
	GenreIDs []int64 // ANDed genre filter
	Year     string  // Release year (movies) / first air year (TV)
}

func (f DiscoverFilters) values(mt media.MediaType) url.Values {
	v := url.Values{}
	sort := f.SortBy
	if sort == "" {
		sort = "popularity.desc"
	}
	v.Set("sort_by", sort)
	if len(f.GenreIDs) > 0 {
		ids := lo.Map(f.GenreIDs, func(id int64, _ int) string {
			return strconv.FormatInt(id, 10)
		})
		v.Set("with_genres", strings.Join(ids, ","))
	}
	if f.Year != "" {
		if mt == media.Movie {
			v.Set("primary_release_year", f.Year)
		} else {
			v.Set("first_air_date_year", f.Year)
		}
	}
	return v
}

// Trending returns trending content for the given window ("day" or "week").
func (c *Client) Trending(mt media.MediaType, window string) ([]media.Summary, error) {
	if window != "day" {
		window = "week"
	}
	var page pagedResults
	if err := c.get(&page, nil, "trending", mt.String(), window); err != nil {
		return nil, err
	}
	return page.toSummaries(mt), nil
}

// Upcoming returns upcoming releases.
func (c *Client) Upcoming(mt media.MediaType) ([]media.Summary, error) {
	var page pagedResults
	if err := c.get(&page, nil, mt.String(), "upcoming"); err != nil {
		return nil, err
	}
	return page.toSummaries(mt), nil
}

// TopRated returns the top-rated chart.
func (c *Client) TopRated(mt media.MediaType) ([]media.Summary, error) {
	var page pagedResults
	if err := c.get(&page, nil, mt.String(), "top_rated"); err != nil {
		return nil, err
	}
	return page.toSummaries(mt), nil
}

// Discover returns one page of the filtered catalog. Pagination is a
// simple page counter; pageNum starts at 1.
func (c *Client) Discover(mt media.MediaType, pageNum int, filters DiscoverFilters) ([]media.Summary, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	params := filters.values(mt)
	params.Set("page", strconv.Itoa(pageNum))

	var page pagedResults
	if err := c.get(&page, params, "discover", mt.String()); err != nil {
		return nil, err
	}
	return page.toSummaries(mt), nil
}

// SearchMulti searches movies and TV shows together. Person results are
// dropped during mapping.
func (c *Client) SearchMulti(query string) ([]media.Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	params := url.Values{}
	params.Set("query", query)

	var page pagedResults
	if err := c.get(&page, params, "search", "multi"); err != nil {
		return nil, err
	}

	results := page.toSummaries(media.Movie)
	if len(results) == 0 {
		return nil, fmt.Errorf("no results found for %q", query)
	}
	return results, nil
}

// Collection returns a movie collection with its parts.
func (c *Client) Collection(id int64) (*media.Collection, error) {
	var dto collectionDTO
	if err := c.get(&dto, nil, "collection", strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}

	coll := &media.Collection{
		ID:       dto.ID,
		Name:     dto.Name,
		Overview: dto.Overview,
	}
	for _, p := range dto.Parts {
		coll.Parts = append(coll.Parts, p.toSummary(media.Movie))
	}
	return coll, nil
}

// Details returns the full detail payload for a movie or TV show,
// including credits and recommendations. When TMDB has no
// recommendations, similar titles are fetched by genre instead.
func (c *Client) Details(mt media.MediaType, id int64) (*media.Details, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,recommendations,videos,images,seasons")

	var dto detailsDTO
	if err := c.get(&dto, params, mt.String(), strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}

	det := dto.toDetails(mt)

	if len(det.Recommendations) == 0 && len(det.GenreIDs) > 0 {
		similar, err := c.Discover(mt, 1, DiscoverFilters{GenreIDs: det.GenreIDs})
		if err == nil {
			det.Recommendations = lo.Filter(similar, func(s media.Summary, _ int) bool {
				return s.ID != id
			})
		}
	}

	return &det, nil
}

// SeasonDetails returns the episode list for one season of a TV show.
func (c *Client) SeasonDetails(tvID int64, season int) (*media.SeasonDetails, error) {
	var dto seasonDetailsDTO
	if err := c.get(&dto, nil, "tv", strconv.FormatInt(tvID, 10), "season", strconv.Itoa(season)); err != nil {
		return nil, err
	}
	sd := dto.toSeasonDetails()
	return &sd, nil
}
