package model

import "time"

// CouncilBody is an organizational unit published by a municipality, e.g.
// "City Council" or "Planning Commission".
type CouncilBody struct {
	ID     int64
	Name   string
	Active bool
}

// OfficeRecord links a person to a body for a bounded term. A nil End means
// the term is open-ended.
type OfficeRecord struct {
	PersonID int64
	BodyID   int64
	BodyName string
	Title    string
	Start    time.Time
	End      *time.Time
}

// ActiveAt reports whether the record's term covers the given instant.
func (r OfficeRecord) ActiveAt(now time.Time) bool {
	return r.End == nil || r.End.After(now)
}

type Person struct {
	ID       int64
	FullName string
	Active   bool
	Email    string
	Website  string
}

// CouncilMember is a Person selected as a current elected official, enriched
// with their primary active office record. The office fields are zero when
// the person was selected by the no-office-data fallback.
type CouncilMember struct {
	Person
	Title    string
	BodyName string
	Start    time.Time
	End      *time.Time
}

// Matter is a municipal legislative item (ordinance, resolution, motion).
type Matter struct {
	ID             int64
	File           string
	Name           string
	Title          string
	Type           string
	Status         string
	BodyName       string
	IntroducedDate string
	AgendaDate     string
	PassedDate     string
}

type MatterHistoryStep struct {
	Date     string
	Action   string
	BodyName string
	Result   string
}

type MatterSponsor struct {
	Name     string
	Sequence int
}

type MatterAttachment struct {
	Name string
	URL  string
}

// Event is a scheduled meeting of a municipal body.
type Event struct {
	ID         int64
	Date       string
	Time       string
	BodyName   string
	Location   string
	AgendaURL  string
	MinutesURL string
	SiteURL    string
}

// EventItem is one agenda line of an Event.
type EventItem struct {
	ID           int64
	AgendaNumber string
	Title        string
	MatterID     int64
	MatterFile   string
	ActionName   string
	Result       string
}

// VoteRecord is one person's recorded vote on an agenda item. Value is the
// free-text label from the source; Result is the classified bucket.
type VoteRecord struct {
	PersonID   int64
	PersonName string
	Value      string
	Result     string
}

// VoteTally aggregates classified votes. AttendanceRate is meaningful only
// when HasRate is true (at least one vote recorded).
type VoteTally struct {
	Total          int
	Yes            int
	No             int
	Absent         int
	Abstain        int
	Unclassified   int
	AttendanceRate int
	HasRate        bool
}
