package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"beenama/internal/download"
	"beenama/internal/log"
	"beenama/internal/media"
	"beenama/internal/provider"
	"beenama/internal/store"
	"beenama/internal/subtitle"
	"beenama/internal/tmdb"
	"beenama/internal/ui"
)

// playItem walks a catalog card to playback: details, season/episode
// selection for TV, stream resolution, then the in-app player (or
// JSON/download modes).
func playItem(c *tmdb.Client, st *store.Store, item media.Summary) error {
	return resumeItem(c, st, item, 0, 0)
}

// resumeItem plays an item at a known season and episode, skipping the
// interactive pickers. Zero values fall back to the playItem flow.
func resumeItem(c *tmdb.Client, st *store.Store, item media.Summary, season, episode int) error {
	details, err := c.Details(item.Type, item.ID)
	if err != nil {
		return fmt.Errorf("getting details: %w", err)
	}

	title := details.Title

	if item.Type == media.TV {
		if season == 0 || episode == 0 {
			season, episode, err = pickEpisode(c, details)
			if err != nil {
				return err
			}
		}
		title = provider.FormatEpisodeTitle(details.Title, season, episode)
	}

	log.Debugf("resolving %s %d s%d e%d", item.Type, item.ID, season, episode)

	p := provider.NewVidlink(defaultVidlinkBase)
	stream, err := p.Resolve(item.Type, item.ID, season, episode)
	if err != nil {
		return fmt.Errorf("resolving stream: %w", err)
	}
	if stream.Title == "" {
		stream.Title = title
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"title":     title,
			"url":       stream.URL,
			"qualities": stream.Qualities,
			"subtitles": stream.Subtitles,
		})
	}

	if flagDownload != "" {
		var subURL string
		if !flagNoSubs {
			if best := subtitle.BestMatch(stream.Subtitles, cfg.SubsLanguage); best != nil {
				subURL = best.URL
			}
		}
		outputPath, err := download.Download(stream, cfg.Quality, title, flagDownload, subURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Downloaded: %s\n", outputPath)
		return nil
	}

	return watchStream(st, item, title, season, episode, stream)
}

// pickEpisode selects a season and episode interactively.
func pickEpisode(c *tmdb.Client, details *media.Details) (int, int, error) {
	seasons := make([]media.Season, 0, len(details.Seasons))
	for _, s := range details.Seasons {
		if s.Number > 0 { // Specials are not playable through embeds
			seasons = append(seasons, s)
		}
	}
	if len(seasons) == 0 {
		return 0, 0, fmt.Errorf("no seasons found for %s", details.Title)
	}

	seasonItems := make([]string, len(seasons))
	for i, s := range seasons {
		seasonItems[i] = fmt.Sprintf("%s (%d episodes)", s.Name, s.EpisodeCount)
	}
	idx, err := ui.SelectWithHeader("Season", detailsHeader(details), seasonItems)
	if err != nil {
		return 0, 0, err
	}
	season := seasons[idx]

	sd, err := c.SeasonDetails(details.ID, season.Number)
	if err != nil {
		return 0, 0, fmt.Errorf("getting episodes: %w", err)
	}
	if len(sd.Episodes) == 0 {
		return 0, 0, fmt.Errorf("no episodes found for season %d", season.Number)
	}

	episodeItems := make([]string, len(sd.Episodes))
	for i, ep := range sd.Episodes {
		label := fmt.Sprintf("Episode %d", ep.Number)
		if ep.Name != "" {
			label += ": " + ep.Name
		}
		if ep.Rating > 0 {
			label += fmt.Sprintf(" ★%.1f", ep.Rating)
		}
		episodeItems[i] = label
	}
	epIdx, err := ui.Select("Episode", episodeItems)
	if err != nil {
		return 0, 0, err
	}

	return season.Number, sd.Episodes[epIdx].Number, nil
}

// detailsHeader renders a detail block for fzf headers.
func detailsHeader(d *media.Details) string {
	var parts []string
	if d.Tagline != "" {
		parts = append(parts, d.Tagline)
	}
	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		parts = append(parts, strings.Join(names, ", "))
	}
	if d.RuntimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%dmin", d.RuntimeMinutes))
	}
	if d.Status != "" {
		parts = append(parts, d.Status)
	}
	return strings.Join(parts, " · ")
}
