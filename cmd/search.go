package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"beenama/internal/log"
	"beenama/internal/ui"
)

// searchRun is the default command: beenama <query>
func searchRun(cmd *cobra.Command, args []string) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	query := strings.Join(args, " ")
	if query == "" {
		var err error
		query, err = ui.Input("Search")
		if err != nil {
			return fmt.Errorf("no search query provided")
		}
	}

	log.Debugf("searching for: %s", query)

	c, st, err := tmdbClient()
	if err != nil {
		return err
	}
	defer st.Close()

	results, err := c.SearchMulti(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	selected, err := pickSummary("Select", results)
	if err != nil {
		return err
	}
	log.Debugf("selected: %s (ID: %d, type: %s)", selected.Title, selected.ID, selected.Type)

	return playItem(c, st, selected)
}
