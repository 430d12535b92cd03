package tmdb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"beenama/internal/media"
)

func loadFixture(t *testing.T, name string, out interface{}) {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal fixture %s: %v", name, err)
	}
}

func TestPagedResultsMapping(t *testing.T) {
	var page pagedResults
	loadFixture(t, "trending.json", &page)

	got := page.toSummaries(media.Movie)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries (person dropped), got %d", len(got))
	}

	movie := got[0]
	if movie.ID != 414906 || movie.Type != media.Movie {
		t.Errorf("movie mapping: got id=%d type=%s", movie.ID, movie.Type)
	}
	if movie.Title != "The Batman" || movie.Year != "2022" {
		t.Errorf("movie title/year: got %q / %q", movie.Title, movie.Year)
	}
	if len(movie.GenreIDs) != 3 {
		t.Errorf("movie genre ids: got %v", movie.GenreIDs)
	}

	tv := got[1]
	if tv.Type != media.TV {
		t.Errorf("media_type should override fallback, got %s", tv.Type)
	}
	if tv.Title != "Breaking Bad" || tv.Year != "2008" {
		t.Errorf("tv name/first_air_date mapping: got %q / %q", tv.Title, tv.Year)
	}
}

func TestSummaryFallbackType(t *testing.T) {
	tests := []struct {
		name     string
		dto      summaryDTO
		fallback media.MediaType
		want     media.MediaType
	}{
		{"no media_type uses fallback", summaryDTO{Name: "Show"}, media.TV, media.TV},
		{"media_type wins over fallback", summaryDTO{MediaType: "tv", Name: "Show"}, media.Movie, media.TV},
		{"unknown media_type falls back", summaryDTO{MediaType: "person", Name: "Actor"}, media.Movie, media.Movie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dto.toSummary(tt.fallback).Type; got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSummaryShortDate(t *testing.T) {
	s := summaryDTO{Title: "Untitled", ReleaseDate: "20"}.toSummary(media.Movie)
	if s.Year != "" {
		t.Errorf("short date should yield empty year, got %q", s.Year)
	}
}

func TestMovieDetailsMapping(t *testing.T) {
	var dto detailsDTO
	loadFixture(t, "details_movie.json", &dto)

	det := dto.toDetails(media.Movie)
	if det.Title != "The Batman" || det.Tagline != "Unmask the truth." {
		t.Errorf("title/tagline: got %q / %q", det.Title, det.Tagline)
	}
	if det.RuntimeMinutes != 176 || det.Status != "Released" {
		t.Errorf("runtime/status: got %d / %q", det.RuntimeMinutes, det.Status)
	}
	if len(det.Genres) != 2 || det.Genres[0].Name != "Crime" {
		t.Errorf("genres: got %v", det.Genres)
	}
	if len(det.GenreIDs) != 2 || det.GenreIDs[1] != 9648 {
		t.Errorf("genre ids resolved from full genres: got %v", det.GenreIDs)
	}
	if len(det.Cast) != 2 || det.Cast[0].Character != "Bruce Wayne" {
		t.Errorf("cast: got %v", det.Cast)
	}
	if len(det.Recommendations) != 1 || det.Recommendations[0].Title != "Batman Begins" {
		t.Errorf("recommendations: got %v", det.Recommendations)
	}
	if det.Collection == nil || det.Collection.ID != 948485 {
		t.Errorf("collection ref: got %v", det.Collection)
	}
	if len(det.Seasons) != 0 {
		t.Errorf("movie should have no seasons, got %v", det.Seasons)
	}
}

func TestTVDetailsMapping(t *testing.T) {
	var dto detailsDTO
	loadFixture(t, "details_tv.json", &dto)

	det := dto.toDetails(media.TV)
	if det.Title != "Breaking Bad" || det.Year != "2008" {
		t.Errorf("tv title/year: got %q / %q", det.Title, det.Year)
	}
	if len(det.Seasons) != 3 {
		t.Fatalf("seasons: got %d", len(det.Seasons))
	}
	if det.Seasons[0].Number != 0 || det.Seasons[1].EpisodeCount != 7 {
		t.Errorf("season mapping: got %+v", det.Seasons)
	}
	if det.Collection != nil {
		t.Errorf("tv shows have no collection, got %v", det.Collection)
	}
	if len(det.Recommendations) != 0 {
		t.Errorf("empty recommendations results should map empty, got %v", det.Recommendations)
	}
}

func TestSeasonDetailsMapping(t *testing.T) {
	var dto seasonDetailsDTO
	loadFixture(t, "season.json", &dto)

	sd := dto.toSeasonDetails()
	if sd.Number != 1 {
		t.Errorf("season number: got %d", sd.Number)
	}
	if len(sd.Episodes) != 2 {
		t.Fatalf("episodes: got %d", len(sd.Episodes))
	}
	ep := sd.Episodes[0]
	if ep.Number != 1 || ep.Name != "Pilot" || ep.AirDate != "2008-01-20" || ep.Runtime != 58 {
		t.Errorf("episode mapping: got %+v", ep)
	}
}
