package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"beenama/internal/media"
	"beenama/internal/tmdb"
)

var flagWindow string

var trendingCmd = &cobra.Command{
	Use:   "trending [movies|tv]",
	Short: "Browse trending content",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartRun("Trending", args, func(c *tmdb.Client, mt media.MediaType) ([]media.Summary, error) {
			return c.Trending(mt, flagWindow)
		})
	},
}

func init() {
	trendingCmd.Flags().StringVarP(&flagWindow, "window", "w", "week", "Trending window: day | week")
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming [movies|tv]",
	Short: "Browse upcoming releases",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartRun("Upcoming", args, func(c *tmdb.Client, mt media.MediaType) ([]media.Summary, error) {
			return c.Upcoming(mt)
		})
	},
}

var topRatedCmd = &cobra.Command{
	Use:   "toprated [movies|tv]",
	Short: "Browse the top rated chart",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartRun("Top rated", args, func(c *tmdb.Client, mt media.MediaType) ([]media.Summary, error) {
			return c.TopRated(mt)
		})
	},
}

// chartRun is the shared browse-a-chart flow: fetch, pick, play.
func chartRun(prompt string, args []string, fetch func(*tmdb.Client, media.MediaType) ([]media.Summary, error)) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	c, st, err := tmdbClient()
	if err != nil {
		return err
	}
	defer st.Close()

	mt := parseMediaTypeArg(args)
	results, err := fetch(c, mt)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", prompt, err)
	}
	if len(results) == 0 {
		fmt.Println("Nothing found.")
		return nil
	}

	selected, err := pickSummary(prompt, results)
	if err != nil {
		return err
	}
	return playItem(c, st, selected)
}
