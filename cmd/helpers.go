package cmd

import (
	"fmt"

	"beenama/internal/config"
	"beenama/internal/log"
	"beenama/internal/media"
	"beenama/internal/store"
	"beenama/internal/tmdb"
	"beenama/internal/ui"
)

// defaultVidlinkBase is the embed host streams are resolved from.
const defaultVidlinkBase = "vidlink.pro"

// openStore opens the local state database.
func openStore() (*store.Store, error) {
	path, err := config.DataPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// tmdbClient builds a TMDB client, attaching the stored session when
// one exists.
func tmdbClient() (*tmdb.Client, *store.Store, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("opening state database: %w", err)
	}

	c := tmdb.New(cfg.APIKey)
	sess, err := st.LoadSession()
	if err != nil {
		log.Warnf("loading session: %v", err)
	}
	if sess != nil {
		c.SetSession(sess.SessionID)
	}
	return c, st, nil
}

// requireSession returns the stored session or an error telling the
// user to log in.
func requireSession(st *store.Store) (*store.Session, error) {
	sess, err := st.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("not logged in (run `beenama login`)")
	}
	return sess, nil
}

// formatSummary renders one catalog card for fzf.
func formatSummary(s media.Summary) string {
	out := s.Title
	if s.Year != "" {
		out += fmt.Sprintf(" (%s)", s.Year)
	}
	if s.Type == media.TV {
		out += " [TV]"
	} else {
		out += " [Movie]"
	}
	if s.Rating > 0 {
		out += fmt.Sprintf(" ★%.1f", s.Rating)
	}
	return out
}

// pickSummary shows catalog cards in fzf and returns the chosen one.
func pickSummary(prompt string, results []media.Summary) (media.Summary, error) {
	items := make([]string, len(results))
	for i, r := range results {
		items[i] = formatSummary(r)
	}
	idx, err := ui.Select(prompt, items)
	if err != nil {
		return media.Summary{}, err
	}
	return results[idx], nil
}

// parseMediaTypeArg maps an optional positional arg to a media type.
func parseMediaTypeArg(args []string) media.MediaType {
	if len(args) == 0 {
		return media.Movie
	}
	switch args[0] {
	case "tv", "shows", "series":
		return media.TV
	default:
		return media.Movie
	}
}
