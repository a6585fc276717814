package congress

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/normalize"
)

type rawLatestAction struct {
	ActionDate string `json:"actionDate"`
	Text       string `json:"text"`
}

type rawBill struct {
	Congress       int             `json:"congress"`
	Type           string          `json:"type"`
	Number         string          `json:"number"`
	Title          string          `json:"title"`
	IntroducedDate string          `json:"introducedDate"`
	LatestAction   rawLatestAction `json:"latestAction"`
	URL            string          `json:"url"`
}

// billListResponse tolerates both key variants the upstream has used for
// the bill collection.
type billListResponse struct {
	Bills   []rawBill `json:"bills"`
	Results []rawBill `json:"results"`
}

func (r billListResponse) items() []rawBill {
	if r.Bills != nil {
		return r.Bills
	}
	return r.Results
}

func toItem(b rawBill) model.LegislativeItem {
	stage, priority := normalize.ClassifyStage(b.LatestAction.Text)
	return model.LegislativeItem{
		Congress:         b.Congress,
		Type:             b.Type,
		Number:           b.Number,
		Title:            b.Title,
		IntroducedDate:   b.IntroducedDate,
		LatestActionText: b.LatestAction.Text,
		LatestActionDate: b.LatestAction.ActionDate,
		URL:              normalize.NormalizeBillURL(b.Congress, b.Type, b.Number, b.URL),
		Stage:            stage,
		StagePriority:    priority,
	}
}

// RecentBills fetches the most recently updated bills.
func (c *Client) RecentBills(limit, offset int) ([]model.LegislativeItem, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("sort", "updateDate desc")

	var raw billListResponse
	if err := c.get("/bill", query, &raw); err != nil {
		return nil, err
	}

	rawBills := raw.items()
	items := make([]model.LegislativeItem, 0, len(rawBills))
	for _, b := range rawBills {
		items = append(items, toItem(b))
	}
	return items, nil
}

type rawBillSponsor struct {
	FullName string `json:"fullName"`
	Party    string `json:"party"`
	State    string `json:"state"`
	District int    `json:"district"`
}

func toSponsor(s rawBillSponsor) model.Sponsor {
	district := ""
	if s.District > 0 {
		district = strconv.Itoa(s.District)
	}
	return model.Sponsor{
		Name:     s.FullName,
		Party:    s.Party,
		State:    s.State,
		District: district,
	}
}

type billDetailResponse struct {
	Bill struct {
		rawBill
		Sponsors []rawBillSponsor `json:"sponsors"`
	} `json:"bill"`
}

// Bill fetches a single bill record with its sponsors. This is the
// essential lookup of the detail view; its failure propagates.
func (c *Client) Bill(congress int, billType, number string) (*model.LegislativeItem, []model.Sponsor, error) {
	path := fmt.Sprintf("/bill/%d/%s/%s", congress, billType, number)

	var raw billDetailResponse
	if err := c.get(path, nil, &raw); err != nil {
		return nil, nil, err
	}

	// backfill identity from the request when the payload omits it, so the
	// derived URL still resolves
	b := raw.Bill.rawBill
	if b.Congress == 0 {
		b.Congress = congress
	}
	if b.Type == "" {
		b.Type = billType
	}
	if b.Number == "" {
		b.Number = number
	}
	item := toItem(b)

	sponsors := make([]model.Sponsor, 0, len(raw.Bill.Sponsors))
	for _, s := range raw.Bill.Sponsors {
		sponsors = append(sponsors, toSponsor(s))
	}
	return &item, sponsors, nil
}
