package legistar

import (
	"net/url"
	"time"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
)

type rawBody struct {
	BodyID         int64  `json:"BodyId"`
	BodyName       string `json:"BodyName"`
	BodyActiveFlag int    `json:"BodyActiveFlag"`
}

// Bodies fetches the organizational units a municipality publishes.
func (c *Client) Bodies(clientID string) ([]model.CouncilBody, error) {
	var raw []rawBody
	if err := c.get(clientID, "bodies", nil, &raw); err != nil {
		return nil, err
	}

	bodies := make([]model.CouncilBody, 0, len(raw))
	for _, b := range raw {
		bodies = append(bodies, model.CouncilBody{
			ID:     b.BodyID,
			Name:   b.BodyName,
			Active: b.BodyActiveFlag == 1,
		})
	}
	return bodies, nil
}

type rawOfficeRecord struct {
	PersonID  int64  `json:"OfficeRecordPersonId"`
	BodyID    int64  `json:"OfficeRecordBodyId"`
	BodyName  string `json:"OfficeRecordBodyName"`
	Title     string `json:"OfficeRecordTitle"`
	StartDate string `json:"OfficeRecordStartDate"`
	EndDate   string `json:"OfficeRecordEndDate"`
}

// OfficeRecords fetches role assignments. Legistar marks open-ended terms
// with a far-future end date; those are kept as-is and compared against
// request time by the caller.
func (c *Client) OfficeRecords(clientID string) ([]model.OfficeRecord, error) {
	query := url.Values{}
	query.Set("$top", "1000")

	var raw []rawOfficeRecord
	if err := c.get(clientID, "officerecords", query, &raw); err != nil {
		return nil, err
	}

	records := make([]model.OfficeRecord, 0, len(raw))
	for _, r := range raw {
		start := time.Time{}
		if t := parseDate(r.StartDate); t != nil {
			start = *t
		}
		records = append(records, model.OfficeRecord{
			PersonID: r.PersonID,
			BodyID:   r.BodyID,
			BodyName: r.BodyName,
			Title:    r.Title,
			Start:    start,
			End:      parseDate(r.EndDate),
		})
	}
	return records, nil
}

type rawPerson struct {
	PersonID   int64  `json:"PersonId"`
	FullName   string `json:"PersonFullName"`
	ActiveFlag int    `json:"PersonActiveFlag"`
	Email      string `json:"PersonEmail"`
	WWW        string `json:"PersonWWW"`
}

// Persons fetches every person the municipality publishes, elected or not.
func (c *Client) Persons(clientID string) ([]model.Person, error) {
	query := url.Values{}
	query.Set("$top", "1000")

	var raw []rawPerson
	if err := c.get(clientID, "persons", query, &raw); err != nil {
		return nil, err
	}

	persons := make([]model.Person, 0, len(raw))
	for _, p := range raw {
		persons = append(persons, model.Person{
			ID:       p.PersonID,
			FullName: p.FullName,
			Active:   p.ActiveFlag == 1,
			Email:    p.Email,
			Website:  p.WWW,
		})
	}
	return persons, nil
}
