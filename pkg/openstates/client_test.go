package openstates

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestSplitIdentifier(t *testing.T) {
	billType, number := splitIdentifier("HB 123")
	assert.Equal(t, "HB", billType)
	assert.Equal(t, "123", number)

	billType, number = splitIdentifier("SJR 5")
	assert.Equal(t, "SJR", billType)
	assert.Equal(t, "5", number)

	billType, number = splitIdentifier("123")
	assert.Equal(t, "", billType)
	assert.Equal(t, "123", number)
}

func TestSearchBills(t *testing.T) {
	var gotQuery map[string]string
	payload := map[string]any{
		"results": []map[string]any{
			{
				"identifier": "HB 123",
				"title":      "An act relating to voting access",
				"session":    "2026",
				"jurisdiction": map[string]any{
					"name": "North Carolina",
				},
				"first_action_date":         "2026-01-15",
				"latest_action_date":        "2026-03-02",
				"latest_action_description": "Referred to Committee on Rules",
				"openstates_url":            "https://openstates.org/nc/bills/2026/HB123/",
			},
		},
		"pagination": map[string]any{
			"per_page":    10,
			"page":        2,
			"max_page":    40,
			"total_items": 395,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"jurisdiction": r.URL.Query().Get("jurisdiction"),
			"page":         r.URL.Query().Get("page"),
			"per_page":     r.URL.Query().Get("per_page"),
			"api_key":      r.Header.Get("X-API-KEY"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &Client{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	bills, page, err := client.SearchBills("north carolina", 10, 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, "north carolina", gotQuery["jurisdiction"])
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "10", gotQuery["per_page"])
	assert.Equal(t, "test-key", gotQuery["api_key"])

	assert.Equal(t, 1, len(bills))
	b := bills[0]
	assert.Equal(t, "HB 123", b.Identifier)
	assert.Equal(t, "HB", b.Type)
	assert.Equal(t, "123", b.Number)
	assert.Equal(t, "North Carolina", b.Jurisdiction)
	assert.Equal(t, "In Committee", b.Stage)

	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, 1, page.Returned)
	assert.Equal(t, 395, page.TotalEstimate)
}

func TestSearchBills_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := &Client{
		apiKey:     "bad-key",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	_, _, err := client.SearchBills("north carolina", 10, 0)
	assert.NotEqual(t, nil, err)
}
