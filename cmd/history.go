package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"beenama/internal/media"
	"beenama/internal/ui"
)

var flagForget bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Resume from a saved playback position",
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVar(&flagForget, "forget", false, "Remove the selected entry instead of playing it")
}

func historyRun(cmd *cobra.Command, args []string) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	c, st, err := tmdbClient()
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.ListResume(50)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = formatResumeEntry(e)
	}
	idx, err := ui.Select("History", items)
	if err != nil {
		return err
	}
	selected := entries[idx]

	if flagForget {
		if err := st.DeleteResume(selected.MediaID, selected.Type, selected.Season, selected.Episode); err != nil {
			return fmt.Errorf("removing entry: %w", err)
		}
		fmt.Println("Entry removed.")
		return nil
	}

	// The player resumes from the stored position at the stored
	// season and episode
	flagContinue = true

	return resumeItem(c, st, media.Summary{
		ID:    selected.MediaID,
		Type:  selected.Type,
		Title: selected.Title,
	}, selected.Season, selected.Episode)
}

func formatResumeEntry(e media.ResumeEntry) string {
	out := e.Title
	if e.Type == media.TV {
		out += fmt.Sprintf(" S%02dE%02d", e.Season, e.Episode)
	}
	if e.DurationMillis > 0 {
		pct := e.PositionMillis * 100 / e.DurationMillis
		out += fmt.Sprintf(" [%d%%]", pct)
	}
	return out
}
