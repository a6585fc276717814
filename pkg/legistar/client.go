// Package legistar adapts the Legistar web API used by municipal
// legislative portals. Endpoints are scoped per municipality ("client" in
// Legistar terms); the API token is optional and only required by a few
// jurisdictions.
package legistar

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://webapi.legistar.com/v1"

// legistarDate is the timestamp layout Legistar returns (no zone).
const legistarDate = "2006-01-02T15:04:05"

type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string {
	return "legistar.com"
}

func (c *Client) get(clientID, resource string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if c.token != "" {
		query.Set("token", c.token)
	}

	u := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(clientID), resource)
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return fmt.Errorf("legistar fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("legistar api status %d on %s: %s", resp.StatusCode, resource, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("legistar decode %s: %w", resource, err)
	}
	return nil
}

// parseDate reads a Legistar timestamp; nil for empty or malformed values.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(legistarDate, s)
	if err != nil {
		return nil
	}
	return &t
}

// dateOnly trims a Legistar timestamp to its date part.
func dateOnly(s string) string {
	if idx := strings.Index(s, "T"); idx > 0 {
		return s[:idx]
	}
	return s
}

func odataTime(t time.Time) string {
	return fmt.Sprintf("datetime'%s'", t.Format(legistarDate))
}
