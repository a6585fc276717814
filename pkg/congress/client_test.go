package congress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func jsonServer(t *testing.T, payloads map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for prefix, payload := range payloads {
			if strings.HasPrefix(r.URL.Path, prefix) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(payload)
				return
			}
		}
		http.NotFound(w, r)
	}))
}

func TestRecentBills(t *testing.T) {
	payload := map[string]any{
		"bills": []map[string]any{
			{
				"congress": 119,
				"type":     "HR",
				"number":   "187",
				"title":    "Safe Communities Act",
				"latestAction": map[string]any{
					"actionDate": "2026-03-10",
					"text":       "Referred to the House Committee on the Judiciary.",
				},
				"url": "https://api.congress.gov/v3/bill/119/hr/187?format=json",
			},
		},
	}

	srv := jsonServer(t, map[string]any{"/bill": payload})
	defer srv.Close()

	bills, err := testClient(srv).RecentBills(10, 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(bills))

	b := bills[0]
	assert.Equal(t, 119, b.Congress)
	assert.Equal(t, "Safe Communities Act", b.Title)
	assert.Equal(t, "In Committee", b.Stage)
	assert.Equal(t, 4, b.StagePriority)
	assert.Equal(t, "https://www.congress.gov/bill/119th-congress/house-bill/187", b.URL)
}

// Some API versions return the collection under "results" instead of
// "bills"; the adapter accepts either.
func TestRecentBills_ResultsKeyVariant(t *testing.T) {
	payload := map[string]any{
		"results": []map[string]any{
			{
				"congress": 119,
				"type":     "S",
				"number":   "42",
				"title":    "Voting Access Act",
				"latestAction": map[string]any{
					"actionDate": "2026-02-01",
					"text":       "Introduced in Senate",
				},
			},
		},
	}

	srv := jsonServer(t, map[string]any{"/bill": payload})
	defer srv.Close()

	bills, err := testClient(srv).RecentBills(10, 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(bills))
	assert.Equal(t, "Voting Access Act", bills[0].Title)
	assert.Equal(t, "Introduced", bills[0].Stage)
}

func TestRecentBills_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"API_KEY_INVALID"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testClient(srv).RecentBills(10, 0)
	assert.NotEqual(t, nil, err)
}

func TestBill_WithSponsors(t *testing.T) {
	payload := map[string]any{
		"bill": map[string]any{
			"congress":       119,
			"type":           "HR",
			"number":         "187",
			"title":          "Safe Communities Act",
			"introducedDate": "2026-01-09",
			"latestAction": map[string]any{
				"actionDate": "2026-03-10",
				"text":       "Passed House by voice vote.",
			},
			"sponsors": []map[string]any{
				{"fullName": "Rep. Rivera, Jordan [D-CA-12]", "party": "D", "state": "CA", "district": 12},
			},
		},
	}

	srv := jsonServer(t, map[string]any{"/bill/119/hr/187": payload})
	defer srv.Close()

	item, sponsors, err := testClient(srv).Bill(119, "hr", "187")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Safe Communities Act", item.Title)
	assert.Equal(t, "2026-01-09", item.IntroducedDate)
	assert.Equal(t, "Passed Chamber", item.Stage)
	assert.Equal(t, 1, len(sponsors))
	assert.Equal(t, "Rep. Rivera, Jordan [D-CA-12]", sponsors[0].Name)
	assert.Equal(t, "12", sponsors[0].District)
}

func TestActions_SortedDescending(t *testing.T) {
	payload := map[string]any{
		"actions": []map[string]any{
			{"actionDate": "2026-01-09", "text": "Introduced in House", "sourceSystem": map[string]any{"name": "House floor actions"}},
			{"actionDate": "2026-03-10", "text": "Passed House.", "sourceSystem": map[string]any{"name": "House floor actions"}},
			{"actionDate": "2026-02-02", "text": "Committee hearing held.", "sourceSystem": map[string]any{"name": "House committee actions"}},
		},
	}

	srv := jsonServer(t, map[string]any{"/bill/119/hr/187/actions": payload})
	defer srv.Close()

	actions, err := testClient(srv).Actions(119, "hr", "187")

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(actions))
	assert.Equal(t, "2026-03-10", actions[0].Date)
	assert.Equal(t, "2026-02-02", actions[1].Date)
	assert.Equal(t, "2026-01-09", actions[2].Date)
	assert.Equal(t, "House floor actions", actions[0].Chamber)
}

func TestSummaries_KeepsUpstreamOrder(t *testing.T) {
	payload := map[string]any{
		"summaries": []map[string]any{
			{"actionDate": "2026-01-09", "text": "As introduced.", "versionCode": "00"},
			{"actionDate": "2026-03-10", "text": "As passed House.", "versionCode": "53"},
		},
	}

	srv := jsonServer(t, map[string]any{"/bill/119/hr/187/summaries": payload})
	defer srv.Close()

	summaries, err := testClient(srv).Summaries(119, "hr", "187")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(summaries))
	assert.Equal(t, "As introduced.", summaries[0].Text)
	assert.Equal(t, "As passed House.", summaries[1].Text)
}

func TestSubjects_FlattensPolicyArea(t *testing.T) {
	payload := map[string]any{
		"subjects": map[string]any{
			"legislativeSubjects": []map[string]any{
				{"name": "Civil rights and liberties"},
				{"name": "Voting rights"},
			},
			"policyArea": map[string]any{"name": "Government Operations"},
		},
	}

	srv := jsonServer(t, map[string]any{"/bill/119/hr/187/subjects": payload})
	defer srv.Close()

	subjects, err := testClient(srv).Subjects(119, "hr", "187")

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"Government Operations", "Civil rights and liberties", "Voting rights"}, subjects)
}
