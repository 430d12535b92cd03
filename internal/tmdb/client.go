// Package tmdb is a client for the TMDB v3 API: catalog queries,
// session-based account authentication, and user list management.
package tmdb

import (
	"fmt"
	"net/http"
	"net/url"

	"beenama/internal/httputil"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// ImageBaseURL is the poster/still image root at w500 width.
	ImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// Client talks to the TMDB API. The zero session is anonymous; account
// operations require SetSession.
type Client struct {
	base      string
	apiKey    string
	sessionID string
	client    *http.Client
}

// New creates a TMDB client with the given API key.
func New(apiKey string) *Client {
	return &Client{
		base:   DefaultBaseURL,
		apiKey: apiKey,
		client: httputil.NewClient(),
	}
}

// SetSession attaches a session ID to subsequent account-scoped calls.
func (c *Client) SetSession(sessionID string) {
	c.sessionID = sessionID
}

// HasSession reports whether account-scoped calls are possible.
func (c *Client) HasSession() bool {
	return c.sessionID != ""
}

// params returns the standard query parameters (api_key, session_id)
// merged with extras.
func (c *Client) params(extra url.Values) url.Values {
	v := url.Values{}
	v.Set("api_key", c.apiKey)
	if c.sessionID != "" {
		v.Set("session_id", c.sessionID)
	}
	for k, vals := range extra {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	return v
}

// get fetches a JSON endpoint under the API root.
func (c *Client) get(out interface{}, extra url.Values, segments ...string) error {
	u := httputil.BuildURL(c.base, segments...)
	if err := httputil.GetJSON(c.client, u, c.params(extra), out); err != nil {
		return fmt.Errorf("tmdb GET %s: %w", joinPath(segments), err)
	}
	return nil
}

// send posts a JSON body to an endpoint under the API root.
func (c *Client) send(method string, body, out interface{}, segments ...string) error {
	u := httputil.BuildURL(c.base, segments...)
	if err := httputil.SendJSON(c.client, method, u, c.params(nil), body, out); err != nil {
		return fmt.Errorf("tmdb %s %s: %w", method, joinPath(segments), err)
	}
	return nil
}

func joinPath(segments []string) string {
	p := ""
	for _, s := range segments {
		p += "/" + s
	}
	return p
}
