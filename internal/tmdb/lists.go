package tmdb

import (
	"fmt"
	"net/http"
	"strconv"

	"beenama/internal/media"
)

// accountList fetches one of the account's default lists (watchlist or
// favorite), merging the movie and TV halves with media type stamped.
func (c *Client) accountList(accountID int64, list string) ([]media.Summary, error) {
	if !c.HasSession() {
		return nil, fmt.Errorf("not logged in")
	}

	acct := strconv.FormatInt(accountID, 10)
	var merged []media.Summary

	var movies pagedResults
	if err := c.get(&movies, nil, "account", acct, list, "movies"); err != nil {
		return nil, err
	}
	merged = append(merged, movies.toSummaries(media.Movie)...)

	var tv pagedResults
	if err := c.get(&tv, nil, "account", acct, list, "tv"); err != nil {
		return nil, err
	}
	merged = append(merged, tv.toSummaries(media.TV)...)

	return merged, nil
}

// Watchlist returns the account's watchlist (movies and TV merged).
func (c *Client) Watchlist(accountID int64) ([]media.Summary, error) {
	return c.accountList(accountID, "watchlist")
}

// Favorites returns the account's favorites (movies and TV merged).
func (c *Client) Favorites(accountID int64) ([]media.Summary, error) {
	return c.accountList(accountID, "favorite")
}

// SetWatchlist adds or removes an item from the watchlist.
func (c *Client) SetWatchlist(accountID int64, mt media.MediaType, mediaID int64, add bool) error {
	body := map[string]interface{}{
		"media_type": mt.String(),
		"media_id":   mediaID,
		"watchlist":  add,
	}
	var resp statusResponse
	if err := c.send(http.MethodPost, body, &resp, "account", strconv.FormatInt(accountID, 10), "watchlist"); err != nil {
		return err
	}
	return nil
}

// SetFavorite adds or removes an item from favorites.
func (c *Client) SetFavorite(accountID int64, mt media.MediaType, mediaID int64, add bool) error {
	body := map[string]interface{}{
		"media_type": mt.String(),
		"media_id":   mediaID,
		"favorite":   add,
	}
	var resp statusResponse
	if err := c.send(http.MethodPost, body, &resp, "account", strconv.FormatInt(accountID, 10), "favorite"); err != nil {
		return err
	}
	return nil
}

// CreateList creates a custom list and returns its ID.
func (c *Client) CreateList(name, description string) (int64, error) {
	if !c.HasSession() {
		return 0, fmt.Errorf("not logged in")
	}

	body := map[string]string{
		"name":        name,
		"description": description,
		"language":    "en",
	}
	var resp struct {
		statusResponse
		ListID int64 `json:"list_id"`
	}
	if err := c.send(http.MethodPost, body, &resp, "list"); err != nil {
		return 0, err
	}
	if resp.ListID == 0 {
		return 0, fmt.Errorf("list creation refused: %s", resp.StatusMessage)
	}
	return resp.ListID, nil
}

// DeleteList removes a custom list.
func (c *Client) DeleteList(listID int64) error {
	return c.send(http.MethodDelete, nil, nil, "list", strconv.FormatInt(listID, 10))
}

// AccountLists returns the account's custom lists.
func (c *Client) AccountLists(accountID int64) ([]media.CustomList, error) {
	if !c.HasSession() {
		return nil, fmt.Errorf("not logged in")
	}

	var resp struct {
		Results []listDTO `json:"results"`
	}
	if err := c.get(&resp, nil, "account", strconv.FormatInt(accountID, 10), "lists"); err != nil {
		return nil, err
	}

	lists := make([]media.CustomList, 0, len(resp.Results))
	for _, l := range resp.Results {
		lists = append(lists, media.CustomList{
			ID:        l.ID,
			Name:      l.Name,
			ItemCount: l.ItemCount,
		})
	}
	return lists, nil
}

// ListItems returns the items in a custom list.
func (c *Client) ListItems(listID int64) ([]media.Summary, error) {
	var resp struct {
		Items []summaryDTO `json:"items"`
	}
	if err := c.get(&resp, nil, "list", strconv.FormatInt(listID, 10)); err != nil {
		return nil, err
	}

	items := make([]media.Summary, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, it.toSummary(media.Movie))
	}
	return items, nil
}

// AddToList adds a movie to a custom list. TMDB custom lists only
// accept movies on the v3 API.
func (c *Client) AddToList(listID, mediaID int64) error {
	body := map[string]int64{"media_id": mediaID}
	return c.send(http.MethodPost, body, nil, "list", strconv.FormatInt(listID, 10), "add_item")
}

// RemoveFromList removes a movie from a custom list.
func (c *Client) RemoveFromList(listID, mediaID int64) error {
	body := map[string]int64{"media_id": mediaID}
	return c.send(http.MethodPost, body, nil, "list", strconv.FormatInt(listID, 10), "remove_item")
}
