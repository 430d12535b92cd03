package provider

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"beenama/internal/httputil"
	"beenama/internal/media"
)

// Vidlink scrapes the vidlink embed pages for stream sources and
// subtitle tracks.
type Vidlink struct {
	base   string // e.g. "vidlink.pro"
	client *http.Client
}

// NewVidlink creates a vidlink provider.
func NewVidlink(base string) *Vidlink {
	return &Vidlink{
		base:   base,
		client: httputil.NewClient(),
	}
}

func (v *Vidlink) baseURL() string {
	return "https://" + v.base
}

// Resolve fetches the embed page for a catalog item and extracts its
// stream. Movies embed at /movie/{id}, episodes at /tv/{id}/{s}/{e}.
func (v *Vidlink) Resolve(mt media.MediaType, tmdbID int64, season, episode int) (*media.Stream, error) {
	var url string
	switch mt {
	case media.TV:
		if season < 1 || episode < 1 {
			return nil, fmt.Errorf("tv resolution requires a season and episode")
		}
		url = fmt.Sprintf("%s/tv/%d/%d/%d", v.baseURL(), tmdbID, season, episode)
	default:
		url = fmt.Sprintf("%s/movie/%d", v.baseURL(), tmdbID)
	}

	doc, err := v.fetchDocument(url)
	if err != nil {
		return nil, fmt.Errorf("resolving %s %d: %w", mt, tmdbID, err)
	}

	stream, err := parseStream(doc)
	if err != nil {
		return nil, fmt.Errorf("resolving %s %d: %w", mt, tmdbID, err)
	}
	return stream, nil
}

// fetchDocument fetches a URL and parses it into a goquery Document.
func (v *Vidlink) fetchDocument(url string) (*goquery.Document, error) {
	resp, err := httputil.Get(v.client, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}

// FormatEpisodeTitle creates a display string for an episode stream.
func FormatEpisodeTitle(title string, season, episode int) string {
	if season < 1 {
		return title
	}
	return title + " S" + pad2(season) + "E" + pad2(episode)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
