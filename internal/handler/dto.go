package handler

// BillResponse is the flattened bill record the client renders in lists.
type BillResponse struct {
	Congress         int    `json:"congress"`
	Type             string `json:"type"`
	Number           string `json:"number"`
	Title            string `json:"title"`
	IntroducedDate   string `json:"introduced_date,omitempty"`
	LatestActionText string `json:"latest_action"`
	LatestActionDate string `json:"latest_action_date"`
	URL              string `json:"url"`
	Stage            string `json:"stage"`
	StagePriority    int    `json:"stage_priority"`
}

type BillsResponse struct {
	Bills  []BillResponse `json:"bills"`
	Source string         `json:"source"`
}

type StateBillResponse struct {
	Identifier       string `json:"identifier"`
	Type             string `json:"type,omitempty"`
	Number           string `json:"number"`
	Session          string `json:"session"`
	Jurisdiction     string `json:"jurisdiction"`
	Title            string `json:"title"`
	IntroducedDate   string `json:"introduced_date,omitempty"`
	LatestActionText string `json:"latest_action"`
	LatestActionDate string `json:"latest_action_date"`
	URL              string `json:"url"`
	Stage            string `json:"stage"`
	StagePriority    int    `json:"stage_priority"`
}

type PaginationResponse struct {
	Limit         int `json:"limit"`
	Offset        int `json:"offset"`
	Returned      int `json:"returned"`
	TotalEstimate int `json:"total_estimate"`
}

type StateBillsResponse struct {
	Bills      []StateBillResponse `json:"bills"`
	Pagination PaginationResponse  `json:"pagination"`
	Source     string              `json:"source"`
}

type SponsorResponse struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	State    string `json:"state"`
	District string `json:"district,omitempty"`
}

type CosponsorResponse struct {
	SponsorResponse
	SponsoredDate string `json:"sponsored_date"`
}

type BillActionResponse struct {
	Date    string `json:"date"`
	Chamber string `json:"chamber"`
	Text    string `json:"text"`
}

type BillSummaryResponse struct {
	Text        string `json:"text"`
	Date        string `json:"date"`
	VersionCode string `json:"version_code"`
}

type BillCommitteeResponse struct {
	Name    string `json:"name"`
	Chamber string `json:"chamber"`
	Type    string `json:"type"`
}

type BillDetailResponse struct {
	BillResponse
	Sponsors     []SponsorResponse       `json:"sponsors"`
	Cosponsors   []CosponsorResponse     `json:"cosponsors"`
	Actions      []BillActionResponse    `json:"actions"`
	Summaries    []BillSummaryResponse   `json:"summaries"`
	Committees   []BillCommitteeResponse `json:"committees"`
	Subjects     []string                `json:"subjects"`
	PlainSummary string                  `json:"plain_summary,omitempty"`
	Source       string                  `json:"source"`
}

type CityResponse struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	State      string `json:"state"`
	Population int    `json:"population"`
	VerifiedAt string `json:"verified_at"`
	PortalURL  string `json:"portal_url"`
}

type CitiesResponse struct {
	Cities []CityResponse `json:"cities"`
	Source string         `json:"source"`
}

// VerifyResponse is the onboarding diagnostic for a candidate portal.
type VerifyResponse struct {
	Client        string `json:"client"`
	ActivePersons int    `json:"active_persons"`
	RecentMatters int    `json:"recent_matters"`
	HasEvents     bool   `json:"has_events"`
	Usable        bool   `json:"usable"`
	Notes         string `json:"notes,omitempty"`
}

type MemberResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
}

type MembersResponse struct {
	City    string           `json:"city"`
	Members []MemberResponse `json:"members"`
	Source  string           `json:"source"`
}

type MatterResponse struct {
	ID             int64  `json:"id"`
	File           string `json:"file"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	Body           string `json:"body,omitempty"`
	IntroducedDate string `json:"introduced_date,omitempty"`
	AgendaDate     string `json:"agenda_date,omitempty"`
	PassedDate     string `json:"passed_date,omitempty"`
}

type LegislationResponse struct {
	City    string           `json:"city"`
	Matters []MatterResponse `json:"matters"`
	Source  string           `json:"source"`
}

type MeetingResponse struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Body       string `json:"body"`
	Location   string `json:"location,omitempty"`
	AgendaURL  string `json:"agenda_url,omitempty"`
	MinutesURL string `json:"minutes_url,omitempty"`
	PortalURL  string `json:"portal_url,omitempty"`
}

type MeetingsResponse struct {
	City     string            `json:"city"`
	Meetings []MeetingResponse `json:"meetings"`
	Source   string            `json:"source"`
}

type VoteResponse struct {
	PersonID   int64  `json:"person_id"`
	PersonName string `json:"person_name"`
	Value      string `json:"value"`
	Result     string `json:"result"`
}

type VoteTallyResponse struct {
	Total          int  `json:"total"`
	Yes            int  `json:"yes"`
	No             int  `json:"no"`
	Absent         int  `json:"absent"`
	Abstain        int  `json:"abstain"`
	Unclassified   int  `json:"unclassified"`
	AttendanceRate *int `json:"attendance_rate,omitempty"`
}

type VotesResponse struct {
	City   string            `json:"city"`
	Votes  []VoteResponse    `json:"votes"`
	Tally  VoteTallyResponse `json:"tally"`
	Source string            `json:"source"`
}

type MatterHistoryResponse struct {
	Date   string `json:"date"`
	Action string `json:"action"`
	Body   string `json:"body,omitempty"`
	Result string `json:"result,omitempty"`
}

type MatterSponsorResponse struct {
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
}

type MatterAttachmentResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type MatterDetailResponse struct {
	MatterResponse
	Stage         string                     `json:"stage"`
	StagePriority int                        `json:"stage_priority"`
	History       []MatterHistoryResponse    `json:"history"`
	Sponsors      []MatterSponsorResponse    `json:"sponsors"`
	Attachments   []MatterAttachmentResponse `json:"attachments"`
	Source        string                     `json:"source"`
}

type AgendaItemResponse struct {
	ID           int64  `json:"id"`
	AgendaNumber string `json:"agenda_number,omitempty"`
	Title        string `json:"title"`
	MatterID     int64  `json:"matter_id,omitempty"`
	MatterFile   string `json:"matter_file,omitempty"`
	Action       string `json:"action,omitempty"`
	Result       string `json:"result,omitempty"`
}

type AgendaResponse struct {
	City   string               `json:"city"`
	Items  []AgendaItemResponse `json:"items"`
	Source string               `json:"source"`
}
