// Package congress adapts the Congress.gov v3 API. All shape handling for
// the federal upstream lives here; handlers only ever see model types.
package congress

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.congress.gov/v3"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string {
	return "congress.gov"
}

func (c *Client) get(path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("format", "json")
	query.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Get(fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode()))
	if err != nil {
		return fmt.Errorf("congress fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("congress api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("congress decode: %w", err)
	}
	return nil
}
