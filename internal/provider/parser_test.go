package provider

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func loadTestDoc(t *testing.T, filename string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parsing test fixture %s: %v", filename, err)
	}
	return doc
}

func TestParseStreamJSONTag(t *testing.T) {
	doc := loadTestDoc(t, "embed_movie.html")
	stream, err := parseStream(doc)
	if err != nil {
		t.Fatalf("parseStream: %v", err)
	}

	if stream.Title != "The Batman" {
		t.Errorf("Title = %q, want 'The Batman'", stream.Title)
	}
	if stream.URL != "https://cdn.example.com/batman/master.m3u8" {
		t.Errorf("URL = %q, want the first stream", stream.URL)
	}

	// Entry with empty URL is dropped
	if len(stream.Qualities) != 3 {
		t.Fatalf("expected 3 quality variants, got %d", len(stream.Qualities))
	}
	if stream.Qualities[1].ID != "1080" || stream.Qualities[1].Label != "1080p" {
		t.Errorf("quality[1] = %+v", stream.Qualities[1])
	}
	if stream.Qualities[1].URL != "https://cdn.example.com/batman/1080.m3u8" {
		t.Errorf("quality[1].URL = %q", stream.Qualities[1].URL)
	}

	if len(stream.Subtitles) != 3 {
		t.Fatalf("expected 3 subtitle tracks, got %d", len(stream.Subtitles))
	}
	if stream.Subtitles[0].Language != "english" || stream.Subtitles[0].Label != "English" {
		t.Errorf("subtitle[0] = %+v", stream.Subtitles[0])
	}
	// IDs are unique even when languages repeat
	if stream.Subtitles[0].ID == stream.Subtitles[1].ID {
		t.Errorf("duplicate subtitle IDs: %q", stream.Subtitles[0].ID)
	}
}

func TestParseStreamInlineScript(t *testing.T) {
	doc := loadTestDoc(t, "embed_inline.html")
	stream, err := parseStream(doc)
	if err != nil {
		t.Fatalf("parseStream: %v", err)
	}

	if stream.Title != "Breaking Bad" {
		t.Errorf("Title = %q, want 'Breaking Bad'", stream.Title)
	}
	if stream.URL != "https://cdn.example.com/bb/s01e01/master.m3u8" {
		t.Errorf("URL = %q", stream.URL)
	}
	if len(stream.Subtitles) != 1 {
		t.Fatalf("expected 1 subtitle, got %d", len(stream.Subtitles))
	}
	if stream.Subtitles[0].Label != "English { braces } inside" {
		t.Errorf("braces in string literals must not confuse extraction, got %q", stream.Subtitles[0].Label)
	}
}

func TestParseStreamNoPayload(t *testing.T) {
	doc := loadTestDoc(t, "embed_empty.html")
	if _, err := parseStream(doc); err == nil {
		t.Error("expected error for page without player data")
	}
}

func TestBalancedObject(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{"a": 1} trailing`, `{"a": 1}`},
		{`{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{`{"s": "brace } in string"}`, `{"s": "brace } in string"}`},
		{`{"s": "escaped \" quote}"}`, `{"s": "escaped \" quote}"}`},
		{`{"unterminated": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := balancedObject(tt.input)
			if got != tt.expected {
				t.Errorf("balancedObject(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatEpisodeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		season   int
		episode  int
		expected string
	}{
		{"movie", "The Batman", 0, 0, "The Batman"},
		{"episode", "Breaking Bad", 1, 2, "Breaking Bad S01E02"},
		{"double digits", "Breaking Bad", 12, 10, "Breaking Bad S12E10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEpisodeTitle(tt.title, tt.season, tt.episode)
			if got != tt.expected {
				t.Errorf("FormatEpisodeTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}
