package tmdb

import (
	"testing"

	"beenama/internal/media"
)

func TestDiscoverFilterValues(t *testing.T) {
	tests := []struct {
		name    string
		filters DiscoverFilters
		mt      media.MediaType
		want    map[string]string
	}{
		{
			name:    "defaults",
			filters: DiscoverFilters{},
			mt:      media.Movie,
			want:    map[string]string{"sort_by": "popularity.desc"},
		},
		{
			name:    "explicit sort",
			filters: DiscoverFilters{SortBy: "vote_average.desc"},
			mt:      media.Movie,
			want:    map[string]string{"sort_by": "vote_average.desc"},
		},
		{
			name:    "genres joined",
			filters: DiscoverFilters{GenreIDs: []int64{28, 12}},
			mt:      media.Movie,
			want:    map[string]string{"sort_by": "popularity.desc", "with_genres": "28,12"},
		},
		{
			name:    "movie year",
			filters: DiscoverFilters{Year: "1999"},
			mt:      media.Movie,
			want:    map[string]string{"sort_by": "popularity.desc", "primary_release_year": "1999"},
		},
		{
			name:    "tv year",
			filters: DiscoverFilters{Year: "1999"},
			mt:      media.TV,
			want:    map[string]string{"sort_by": "popularity.desc", "first_air_date_year": "1999"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filters.values(tt.mt)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got.Get(k) != v {
					t.Errorf("%s: got %q, want %q", k, got.Get(k), v)
				}
			}
		})
	}
}

func TestSearchMultiRejectsEmptyQuery(t *testing.T) {
	c := New("key")
	if _, err := c.SearchMulti("   "); err == nil {
		t.Error("expected error for blank query")
	}
}
