package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"beenama/internal/tmdb"
	"beenama/internal/ui"
)

var (
	flagGenres []int64
	flagYear   string
	flagSort   string
	flagPage   int
)

var browseCmd = &cobra.Command{
	Use:   "browse [movies|tv]",
	Short: "Browse the catalog with filters",
	Long: `Browse pages through the filtered TMDB catalog. The last entry of
each page advances to the next one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: browseRun,
}

func init() {
	browseCmd.Flags().Int64SliceVarP(&flagGenres, "genre", "g", nil, "Genre IDs to filter by (repeatable)")
	browseCmd.Flags().StringVarP(&flagYear, "year", "y", "", "Release year")
	browseCmd.Flags().StringVarP(&flagSort, "sort", "s", "", "Sort order (default popularity.desc)")
	browseCmd.Flags().IntVarP(&flagPage, "page", "p", 1, "Starting page")
}

func browseRun(cmd *cobra.Command, args []string) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	c, st, err := tmdbClient()
	if err != nil {
		return err
	}
	defer st.Close()

	mt := parseMediaTypeArg(args)
	filters := tmdb.DiscoverFilters{
		SortBy:   flagSort,
		GenreIDs: flagGenres,
		Year:     flagYear,
	}

	page := flagPage
	if page < 1 {
		page = 1
	}

	for {
		results, err := c.Discover(mt, page, filters)
		if err != nil {
			return fmt.Errorf("browsing catalog: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("Nothing found.")
			return nil
		}

		items := make([]string, 0, len(results)+1)
		for _, r := range results {
			items = append(items, formatSummary(r))
		}
		items = append(items, "Next page →")

		idx, err := ui.Select(fmt.Sprintf("Browse p.%d", page), items)
		if err != nil {
			return err
		}
		if idx == len(results) {
			page++
			continue
		}
		return playItem(c, st, results[idx])
	}
}

var collectionCmd = &cobra.Command{
	Use:   "collection <id>",
	Short: "Browse a movie collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}

		var id int64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid collection id %q", args[0])
		}

		c, st, err := tmdbClient()
		if err != nil {
			return err
		}
		defer st.Close()

		coll, err := c.Collection(id)
		if err != nil {
			return fmt.Errorf("getting collection: %w", err)
		}
		if len(coll.Parts) == 0 {
			fmt.Println("Collection is empty.")
			return nil
		}

		items := make([]string, len(coll.Parts))
		for i, p := range coll.Parts {
			items[i] = formatSummary(p)
		}
		idx, err := ui.SelectWithHeader(coll.Name, coll.Overview, items)
		if err != nil {
			return err
		}
		return playItem(c, st, coll.Parts[idx])
	},
}
