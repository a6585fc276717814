package legistar

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
)

type rawEvent struct {
	EventID     int64  `json:"EventId"`
	Date        string `json:"EventDate"`
	Time        string `json:"EventTime"`
	BodyName    string `json:"EventBodyName"`
	Location    string `json:"EventLocation"`
	AgendaFile  string `json:"EventAgendaFile"`
	MinutesFile string `json:"EventMinutesFile"`
	InSiteURL   string `json:"EventInSiteURL"`
}

func toEvent(e rawEvent) model.Event {
	return model.Event{
		ID:         e.EventID,
		Date:       dateOnly(e.Date),
		Time:       e.Time,
		BodyName:   e.BodyName,
		Location:   e.Location,
		AgendaURL:  e.AgendaFile,
		MinutesURL: e.MinutesFile,
		SiteURL:    e.InSiteURL,
	}
}

// Events fetches meetings: upcoming ones first, falling back to the most
// recent past meetings when nothing is scheduled.
func (c *Client) Events(clientID string, limit int) ([]model.Event, error) {
	if limit < 1 {
		limit = 20
	}
	top := strconv.Itoa(limit)
	now := time.Now()

	upcoming := url.Values{}
	upcoming.Set("$filter", fmt.Sprintf("EventDate ge %s", odataTime(now)))
	upcoming.Set("$orderby", "EventDate asc")
	upcoming.Set("$top", top)

	recent := url.Values{}
	recent.Set("$orderby", "EventDate desc")
	recent.Set("$top", top)

	var lastErr error
	failed := 0
	queries := []odataQuery{
		{name: "upcoming", params: upcoming},
		{name: "recent", params: recent},
	}
	for _, q := range queries {
		var raw []rawEvent
		if err := c.get(clientID, "events", q.params, &raw); err != nil {
			lastErr = fmt.Errorf("events %s query: %w", q.name, err)
			failed++
			continue
		}
		if len(raw) == 0 {
			continue
		}
		events := make([]model.Event, 0, len(raw))
		for _, e := range raw {
			events = append(events, toEvent(e))
		}
		return events, nil
	}

	if failed == len(queries) {
		return nil, lastErr
	}
	return []model.Event{}, nil
}

type rawEventItem struct {
	EventItemID    int64  `json:"EventItemId"`
	AgendaNumber   string `json:"EventItemAgendaNumber"`
	Title          string `json:"EventItemTitle"`
	MatterID       int64  `json:"EventItemMatterId"`
	MatterFile     string `json:"EventItemMatterFile"`
	ActionName     string `json:"EventItemActionName"`
	PassedFlagName string `json:"EventItemPassedFlagName"`
}

// EventItems fetches the agenda lines of one meeting.
func (c *Client) EventItems(clientID string, eventID int64) ([]model.EventItem, error) {
	query := url.Values{}
	query.Set("$orderby", "EventItemMinutesSequence")

	var raw []rawEventItem
	if err := c.get(clientID, fmt.Sprintf("events/%d/eventitems", eventID), query, &raw); err != nil {
		return nil, err
	}

	items := make([]model.EventItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, model.EventItem{
			ID:           it.EventItemID,
			AgendaNumber: it.AgendaNumber,
			Title:        it.Title,
			MatterID:     it.MatterID,
			MatterFile:   it.MatterFile,
			ActionName:   it.ActionName,
			Result:       it.PassedFlagName,
		})
	}
	return items, nil
}

type rawVote struct {
	PersonID   int64  `json:"VotePersonId"`
	PersonName string `json:"VotePersonName"`
	ValueName  string `json:"VoteValueName"`
}

// Votes fetches the recorded votes on one agenda item. Values are the
// jurisdiction's free-text labels; classification happens downstream.
func (c *Client) Votes(clientID string, eventItemID int64) ([]model.VoteRecord, error) {
	var raw []rawVote
	if err := c.get(clientID, fmt.Sprintf("eventitems/%d/votes", eventItemID), nil, &raw); err != nil {
		return nil, err
	}

	votes := make([]model.VoteRecord, 0, len(raw))
	for _, v := range raw {
		votes = append(votes, model.VoteRecord{
			PersonID:   v.PersonID,
			PersonName: v.PersonName,
			Value:      v.ValueName,
		})
	}
	return votes, nil
}
