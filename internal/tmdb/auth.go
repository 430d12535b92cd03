package tmdb

import (
	"fmt"
	"net/http"
	"net/url"

	"beenama/internal/media"
)

// NewRequestToken starts the TMDB approval flow by creating a request token.
func (c *Client) NewRequestToken() (string, error) {
	var resp struct {
		Success      bool   `json:"success"`
		RequestToken string `json:"request_token"`
	}
	if err := c.get(&resp, nil, "authentication", "token", "new"); err != nil {
		return "", err
	}
	if !resp.Success || resp.RequestToken == "" {
		return "", fmt.Errorf("request token creation refused")
	}
	return resp.RequestToken, nil
}

// ApprovalURL is the page where the user approves a request token in a
// browser before a session can be created from it.
func ApprovalURL(requestToken string) string {
	return "https://www.themoviedb.org/authenticate/" + url.PathEscape(requestToken)
}

// CreateSession exchanges an approved request token for a session ID.
func (c *Client) CreateSession(requestToken string) (string, error) {
	body := map[string]string{"request_token": requestToken}
	var resp struct {
		Success   bool   `json:"success"`
		SessionID string `json:"session_id"`
	}
	if err := c.send(http.MethodPost, body, &resp, "authentication", "session", "new"); err != nil {
		return "", err
	}
	if !resp.Success || resp.SessionID == "" {
		return "", fmt.Errorf("session creation refused (token not approved?)")
	}
	return resp.SessionID, nil
}

// Account returns details for the account behind the current session.
func (c *Client) Account() (*media.Account, error) {
	if !c.HasSession() {
		return nil, fmt.Errorf("not logged in")
	}

	var resp struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}
	if err := c.get(&resp, nil, "account"); err != nil {
		return nil, err
	}
	return &media.Account{
		ID:       resp.ID,
		Username: resp.Username,
		Name:     resp.Name,
	}, nil
}
