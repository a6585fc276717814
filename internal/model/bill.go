package model

// LegislativeItem is a single federal bill or resolution, flattened from the
// Congress.gov payload. Constructed once per request, never mutated.
type LegislativeItem struct {
	Congress         int
	Type             string
	Number           string
	Title            string
	IntroducedDate   string
	LatestActionText string
	LatestActionDate string
	URL              string
	Stage            string
	StagePriority    int
}

type Sponsor struct {
	Name     string
	Party    string
	State    string
	District string
}

type Cosponsor struct {
	Sponsor
	SponsoredDate string
}

type BillAction struct {
	Date    string
	Chamber string
	Text    string
}

type BillSummary struct {
	Text        string
	Date        string
	VersionCode string
}

type BillCommittee struct {
	Name    string
	Chamber string
	Type    string
}

// BillDetail extends a LegislativeItem with the secondary lookups. Actions
// are sorted descending by date. PlainSummary is empty when no rewrite
// provider is configured or the rewrite failed.
type BillDetail struct {
	Item         LegislativeItem
	Sponsors     []Sponsor
	Cosponsors   []Cosponsor
	Actions      []BillAction
	Summaries    []BillSummary
	Committees   []BillCommittee
	Subjects     []string
	PlainSummary string
}

// StateBill is a state-level bill from the OpenStates API. Identifier keeps
// the upstream form ("HB 123"); Type and Number are split out of it.
type StateBill struct {
	Identifier       string
	Type             string
	Number           string
	Session          string
	Jurisdiction     string
	Title            string
	IntroducedDate   string
	LatestActionText string
	LatestActionDate string
	URL              string
	Stage            string
	StagePriority    int
}

// Page describes one page of upstream results.
type Page struct {
	Limit         int
	Offset        int
	Returned      int
	TotalEstimate int
}
