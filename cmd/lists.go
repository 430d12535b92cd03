package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"beenama/internal/media"
	"beenama/internal/store"
	"beenama/internal/tmdb"
	"beenama/internal/ui"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Watchlist, favorites, and custom lists",
}

func init() {
	listsCmd.AddCommand(watchlistCmd)
	listsCmd.AddCommand(favoritesCmd)
	listsCmd.AddCommand(myListsCmd)
	listsCmd.AddCommand(createListCmd)
	listsCmd.AddCommand(deleteListCmd)
	listsCmd.AddCommand(addToListCmd)
	listsCmd.AddCommand(removeFromListCmd)
	listsCmd.AddCommand(markCmd)
}

// accountFlow fetches an account-scoped list, shows it, and plays the
// selection.
func accountFlow(prompt string, fetch func(*tmdb.Client, int64) ([]media.Summary, error)) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	c, st, err := tmdbClient()
	if err != nil {
		return err
	}
	defer st.Close()

	sess, err := requireSession(st)
	if err != nil {
		return err
	}

	results, err := fetch(c, sess.AccountID)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", strings.ToLower(prompt), err)
	}
	if len(results) == 0 {
		fmt.Printf("Your %s is empty.\n", strings.ToLower(prompt))
		return nil
	}

	selected, err := pickSummary(prompt, results)
	if err != nil {
		return err
	}
	return playItem(c, st, selected)
}

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Browse your watchlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return accountFlow("Watchlist", func(c *tmdb.Client, accountID int64) ([]media.Summary, error) {
			return c.Watchlist(accountID)
		})
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Browse your favorites",
	RunE: func(cmd *cobra.Command, args []string) error {
		return accountFlow("Favorites", func(c *tmdb.Client, accountID int64) ([]media.Summary, error) {
			return c.Favorites(accountID)
		})
	},
}

var myListsCmd = &cobra.Command{
	Use:   "my",
	Short: "Browse your custom lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}

		c, st, err := tmdbClient()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := requireSession(st)
		if err != nil {
			return err
		}

		lists, err := c.AccountLists(sess.AccountID)
		if err != nil {
			return fmt.Errorf("fetching lists: %w", err)
		}
		if len(lists) == 0 {
			fmt.Println("You have no custom lists.")
			return nil
		}

		items := make([]string, len(lists))
		for i, l := range lists {
			items[i] = fmt.Sprintf("%s (%d items)", l.Name, l.ItemCount)
		}
		idx, err := ui.Select("Lists", items)
		if err != nil {
			return err
		}

		entries, err := c.ListItems(lists[idx].ID)
		if err != nil {
			return fmt.Errorf("fetching list items: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("List is empty.")
			return nil
		}

		selected, err := pickSummary(lists[idx].Name, entries)
		if err != nil {
			return err
		}
		return playItem(c, st, selected)
	},
}

var createListCmd = &cobra.Command{
	Use:   "create <name> [description]",
	Short: "Create a custom list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, st, err := sessionClient()
		if err != nil {
			return err
		}
		defer st.Close()

		description := strings.Join(args[1:], " ")
		id, err := c.CreateList(args[0], description)
		if err != nil {
			return fmt.Errorf("creating list: %w", err)
		}
		fmt.Printf("Created list %q (id %d).\n", args[0], id)
		return nil
	},
}

var deleteListCmd = &cobra.Command{
	Use:   "delete <list-id>",
	Short: "Delete a custom list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listID, err := parseID(args[0])
		if err != nil {
			return err
		}

		c, st, err := sessionClient()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := c.DeleteList(listID); err != nil {
			return fmt.Errorf("deleting list: %w", err)
		}
		fmt.Println("List deleted.")
		return nil
	},
}

var addToListCmd = &cobra.Command{
	Use:   "add <list-id> <media-id>",
	Short: "Add a movie to a custom list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listItemOp(args, func(c *tmdb.Client, listID, mediaID int64) error {
			return c.AddToList(listID, mediaID)
		}, "added to")
	},
}

var removeFromListCmd = &cobra.Command{
	Use:   "remove <list-id> <media-id>",
	Short: "Remove a movie from a custom list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listItemOp(args, func(c *tmdb.Client, listID, mediaID int64) error {
			return c.RemoveFromList(listID, mediaID)
		}, "removed from")
	},
}

// markCmd toggles watchlist/favorite membership.
var markCmd = &cobra.Command{
	Use:   "mark <watchlist|favorite> <movie|tv> <media-id> [on|off]",
	Short: "Add or remove an item on your watchlist or favorites",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaID, err := parseID(args[2])
		if err != nil {
			return err
		}
		mt, err := media.ParseMediaType(args[1])
		if err != nil {
			return err
		}
		add := len(args) < 4 || args[3] != "off"

		c, st, err := sessionClient()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := requireSession(st)
		if err != nil {
			return err
		}

		switch args[0] {
		case "watchlist":
			err = c.SetWatchlist(sess.AccountID, mt, mediaID, add)
		case "favorite", "favorites":
			err = c.SetFavorite(sess.AccountID, mt, mediaID, add)
		default:
			return fmt.Errorf("unknown target %q (expected watchlist or favorite)", args[0])
		}
		if err != nil {
			return fmt.Errorf("updating %s: %w", args[0], err)
		}

		verb := "added"
		if !add {
			verb = "removed"
		}
		fmt.Printf("Item %s.\n", verb)
		return nil
	},
}

// sessionClient returns a client guaranteed to carry a session.
func sessionClient() (*tmdb.Client, *store.Store, error) {
	c, st, err := tmdbClient()
	if err != nil {
		return nil, nil, err
	}
	if !c.HasSession() {
		st.Close()
		return nil, nil, fmt.Errorf("not logged in (run `beenama login`)")
	}
	return c, st, nil
}

func listItemOp(args []string, op func(*tmdb.Client, int64, int64) error, verb string) error {
	listID, err := parseID(args[0])
	if err != nil {
		return err
	}
	mediaID, err := parseID(args[1])
	if err != nil {
		return err
	}

	c, st, err := sessionClient()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := op(c, listID, mediaID); err != nil {
		return fmt.Errorf("updating list: %w", err)
	}
	fmt.Printf("Item %s list %d.\n", verb, listID)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
