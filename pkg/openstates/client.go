// Package openstates adapts the OpenStates v3 API for state legislatures.
package openstates

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/normalize"
)

const defaultBaseURL = "https://v3.openstates.org"

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
	return "openstates.org"
}

type rawStateBill struct {
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Session     string `json:"session"`
	Jurisdiction struct {
		Name string `json:"name"`
	} `json:"jurisdiction"`
	FirstActionDate        string `json:"first_action_date"`
	LatestActionDate       string `json:"latest_action_date"`
	LatestActionDescription string `json:"latest_action_description"`
	OpenstatesURL          string `json:"openstates_url"`
}

type billSearchResponse struct {
	Results    []rawStateBill `json:"results"`
	Pagination struct {
		PerPage    int `json:"per_page"`
		Page       int `json:"page"`
		MaxPage    int `json:"max_page"`
		TotalItems int `json:"total_items"`
	} `json:"pagination"`
}

// splitIdentifier breaks "HB 123" into type and number. Identifiers without
// a space keep the whole string as the number.
func splitIdentifier(identifier string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(identifier), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", identifier
}

// SearchBills fetches bills for a jurisdiction, newest action first. The
// upstream paginates by page number; limit/offset are converted, so offset
// should be a multiple of limit for exact positioning.
func (c *Client) SearchBills(jurisdiction string, limit, offset int) ([]model.StateBill, model.Page, error) {
	if limit < 1 {
		limit = 10
	}
	page := offset/limit + 1

	query := url.Values{}
	query.Set("jurisdiction", jurisdiction)
	query.Set("sort", "latest_action_desc")
	query.Set("per_page", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/bills?%s", c.baseURL, query.Encode()), nil)
	if err != nil {
		return nil, model.Page{}, fmt.Errorf("openstates request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.Page{}, fmt.Errorf("openstates fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, model.Page{}, fmt.Errorf("openstates api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw billSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, model.Page{}, fmt.Errorf("openstates decode: %w", err)
	}

	bills := make([]model.StateBill, 0, len(raw.Results))
	for _, b := range raw.Results {
		billType, number := splitIdentifier(b.Identifier)
		stage, priority := normalize.ClassifyStage(b.LatestActionDescription)
		bills = append(bills, model.StateBill{
			Identifier:       b.Identifier,
			Type:             billType,
			Number:           number,
			Session:          b.Session,
			Jurisdiction:     b.Jurisdiction.Name,
			Title:            b.Title,
			IntroducedDate:   b.FirstActionDate,
			LatestActionText: b.LatestActionDescription,
			LatestActionDate: b.LatestActionDate,
			URL:              b.OpenstatesURL,
			Stage:            stage,
			StagePriority:    priority,
		})
	}

	pageInfo := model.Page{
		Limit:         limit,
		Offset:        offset,
		Returned:      len(bills),
		TotalEstimate: raw.Pagination.TotalItems,
	}
	return bills, pageInfo, nil
}
