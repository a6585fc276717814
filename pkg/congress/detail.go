package congress

import (
	"fmt"
	"sort"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
)

func detailPath(congress int, billType, number, section string) string {
	return fmt.Sprintf("/bill/%d/%s/%s/%s", congress, billType, number, section)
}

type rawAction struct {
	ActionDate   string `json:"actionDate"`
	Text         string `json:"text"`
	Chamber      string `json:"chamber"`
	SourceSystem struct {
		Name string `json:"name"`
	} `json:"sourceSystem"`
}

// Actions fetches the chronological action list, sorted descending by date.
func (c *Client) Actions(congress int, billType, number string) ([]model.BillAction, error) {
	var raw struct {
		Actions []rawAction `json:"actions"`
	}
	if err := c.get(detailPath(congress, billType, number, "actions"), nil, &raw); err != nil {
		return nil, err
	}

	actions := make([]model.BillAction, 0, len(raw.Actions))
	for _, a := range raw.Actions {
		chamber := a.Chamber
		if chamber == "" {
			chamber = a.SourceSystem.Name
		}
		actions = append(actions, model.BillAction{
			Date:    a.ActionDate,
			Chamber: chamber,
			Text:    a.Text,
		})
	}

	// ISO dates sort lexically
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].Date > actions[j].Date })
	return actions, nil
}

// Summaries fetches the bill summaries in upstream order.
func (c *Client) Summaries(congress int, billType, number string) ([]model.BillSummary, error) {
	var raw struct {
		Summaries []struct {
			ActionDate  string `json:"actionDate"`
			UpdateDate  string `json:"updateDate"`
			Text        string `json:"text"`
			VersionCode string `json:"versionCode"`
		} `json:"summaries"`
	}
	if err := c.get(detailPath(congress, billType, number, "summaries"), nil, &raw); err != nil {
		return nil, err
	}

	summaries := make([]model.BillSummary, 0, len(raw.Summaries))
	for _, s := range raw.Summaries {
		date := s.ActionDate
		if date == "" {
			date = s.UpdateDate
		}
		summaries = append(summaries, model.BillSummary{
			Text:        s.Text,
			Date:        date,
			VersionCode: s.VersionCode,
		})
	}
	return summaries, nil
}

// Cosponsors fetches the cosponsor list with join dates.
func (c *Client) Cosponsors(congress int, billType, number string) ([]model.Cosponsor, error) {
	var raw struct {
		Cosponsors []struct {
			rawBillSponsor
			SponsorshipDate string `json:"sponsorshipDate"`
		} `json:"cosponsors"`
	}
	if err := c.get(detailPath(congress, billType, number, "cosponsors"), nil, &raw); err != nil {
		return nil, err
	}

	cosponsors := make([]model.Cosponsor, 0, len(raw.Cosponsors))
	for _, cs := range raw.Cosponsors {
		cosponsors = append(cosponsors, model.Cosponsor{
			Sponsor:       toSponsor(cs.rawBillSponsor),
			SponsoredDate: cs.SponsorshipDate,
		})
	}
	return cosponsors, nil
}

// Committees fetches the committees a bill has been assigned to.
func (c *Client) Committees(congress int, billType, number string) ([]model.BillCommittee, error) {
	var raw struct {
		Committees []struct {
			Name    string `json:"name"`
			Chamber string `json:"chamber"`
			Type    string `json:"type"`
		} `json:"committees"`
	}
	if err := c.get(detailPath(congress, billType, number, "committees"), nil, &raw); err != nil {
		return nil, err
	}

	committees := make([]model.BillCommittee, 0, len(raw.Committees))
	for _, cm := range raw.Committees {
		committees = append(committees, model.BillCommittee{
			Name:    cm.Name,
			Chamber: cm.Chamber,
			Type:    cm.Type,
		})
	}
	return committees, nil
}

// Subjects fetches legislative subjects plus the policy area, flattened to
// a single name list.
func (c *Client) Subjects(congress int, billType, number string) ([]string, error) {
	var raw struct {
		Subjects struct {
			LegislativeSubjects []struct {
				Name string `json:"name"`
			} `json:"legislativeSubjects"`
			PolicyArea struct {
				Name string `json:"name"`
			} `json:"policyArea"`
		} `json:"subjects"`
	}
	if err := c.get(detailPath(congress, billType, number, "subjects"), nil, &raw); err != nil {
		return nil, err
	}

	subjects := make([]string, 0, len(raw.Subjects.LegislativeSubjects)+1)
	if raw.Subjects.PolicyArea.Name != "" {
		subjects = append(subjects, raw.Subjects.PolicyArea.Name)
	}
	for _, s := range raw.Subjects.LegislativeSubjects {
		if s.Name != "" {
			subjects = append(subjects, s.Name)
		}
	}
	return subjects, nil
}
