package legistar

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
)

type rawMatter struct {
	MatterID   int64  `json:"MatterId"`
	File       string `json:"MatterFile"`
	Name       string `json:"MatterName"`
	Title      string `json:"MatterTitle"`
	TypeName   string `json:"MatterTypeName"`
	StatusName string `json:"MatterStatusName"`
	BodyName   string `json:"MatterBodyName"`
	IntroDate  string `json:"MatterIntroDate"`
	AgendaDate string `json:"MatterAgendaDate"`
	PassedDate string `json:"MatterPassedDate"`
}

func toMatter(m rawMatter) model.Matter {
	return model.Matter{
		ID:             m.MatterID,
		File:           m.File,
		Name:           m.Name,
		Title:          m.Title,
		Type:           m.TypeName,
		Status:         m.StatusName,
		BodyName:       m.BodyName,
		IntroducedDate: dateOnly(m.IntroDate),
		AgendaDate:     dateOnly(m.AgendaDate),
		PassedDate:     dateOnly(m.PassedDate),
	}
}

// odataQuery is one strategy in a lookup chain.
type odataQuery struct {
	name   string
	params url.Values
}

// matterQueries builds the ordered strategy chain: matters agendized in the
// last 90 days, then recently modified matters, then a plain newest-first
// slice. Smaller portals often leave agenda dates unset, which is why the
// looser strategies exist.
func matterQueries(limit int, now time.Time) []odataQuery {
	top := strconv.Itoa(limit)
	window := odataTime(now.AddDate(0, 0, -90))

	agendized := url.Values{}
	agendized.Set("$filter", fmt.Sprintf("MatterAgendaDate ge %s", window))
	agendized.Set("$orderby", "MatterAgendaDate desc")
	agendized.Set("$top", top)

	modified := url.Values{}
	modified.Set("$filter", fmt.Sprintf("MatterLastModifiedUtc ge %s", window))
	modified.Set("$orderby", "MatterLastModifiedUtc desc")
	modified.Set("$top", top)

	newest := url.Values{}
	newest.Set("$orderby", "MatterId desc")
	newest.Set("$top", top)

	return []odataQuery{
		{name: "agendized", params: agendized},
		{name: "recently-modified", params: modified},
		{name: "newest", params: newest},
	}
}

// Matters fetches recent legislative matters, trying each query strategy in
// order until one returns rows. An error is reported only when every
// strategy fails outright.
func (c *Client) Matters(clientID string, limit int) ([]model.Matter, error) {
	if limit < 1 {
		limit = 20
	}

	var lastErr error
	failed := 0
	queries := matterQueries(limit, time.Now())
	for _, q := range queries {
		var raw []rawMatter
		if err := c.get(clientID, "matters", q.params, &raw); err != nil {
			lastErr = fmt.Errorf("matters %s query: %w", q.name, err)
			failed++
			continue
		}
		if len(raw) == 0 {
			continue
		}
		matters := make([]model.Matter, 0, len(raw))
		for _, m := range raw {
			matters = append(matters, toMatter(m))
		}
		return matters, nil
	}

	if failed == len(queries) {
		return nil, lastErr
	}
	return []model.Matter{}, nil
}

// Matter fetches one matter by id.
func (c *Client) Matter(clientID string, matterID int64) (*model.Matter, error) {
	var raw rawMatter
	if err := c.get(clientID, fmt.Sprintf("matters/%d", matterID), nil, &raw); err != nil {
		return nil, err
	}
	matter := toMatter(raw)
	return &matter, nil
}

type rawHistoryStep struct {
	ActionDate     string `json:"MatterHistoryActionDate"`
	ActionName     string `json:"MatterHistoryActionName"`
	ActionBodyName string `json:"MatterHistoryActionBodyName"`
	PassedFlagName string `json:"MatterHistoryPassedFlagName"`
}

// MatterHistory fetches the action history of a matter, newest first.
func (c *Client) MatterHistory(clientID string, matterID int64) ([]model.MatterHistoryStep, error) {
	query := url.Values{}
	query.Set("$orderby", "MatterHistoryActionDate desc")

	var raw []rawHistoryStep
	if err := c.get(clientID, fmt.Sprintf("matters/%d/histories", matterID), query, &raw); err != nil {
		return nil, err
	}

	steps := make([]model.MatterHistoryStep, 0, len(raw))
	for _, h := range raw {
		steps = append(steps, model.MatterHistoryStep{
			Date:     dateOnly(h.ActionDate),
			Action:   h.ActionName,
			BodyName: h.ActionBodyName,
			Result:   h.PassedFlagName,
		})
	}
	return steps, nil
}

type rawMatterSponsor struct {
	Name     string `json:"MatterSponsorName"`
	Sequence int    `json:"MatterSponsorSequence"`
}

func (c *Client) MatterSponsors(clientID string, matterID int64) ([]model.MatterSponsor, error) {
	var raw []rawMatterSponsor
	if err := c.get(clientID, fmt.Sprintf("matters/%d/sponsors", matterID), nil, &raw); err != nil {
		return nil, err
	}

	sponsors := make([]model.MatterSponsor, 0, len(raw))
	for _, s := range raw {
		sponsors = append(sponsors, model.MatterSponsor{Name: s.Name, Sequence: s.Sequence})
	}
	return sponsors, nil
}

type rawAttachment struct {
	Name      string `json:"MatterAttachmentName"`
	Hyperlink string `json:"MatterAttachmentHyperlink"`
}

func (c *Client) MatterAttachments(clientID string, matterID int64) ([]model.MatterAttachment, error) {
	var raw []rawAttachment
	if err := c.get(clientID, fmt.Sprintf("matters/%d/attachments", matterID), nil, &raw); err != nil {
		return nil, err
	}

	attachments := make([]model.MatterAttachment, 0, len(raw))
	for _, a := range raw {
		attachments = append(attachments, model.MatterAttachment{Name: a.Name, URL: a.Hyperlink})
	}
	return attachments, nil
}
