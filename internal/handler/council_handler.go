package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/cities"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/normalize"
	"github.com/gin-gonic/gin"
)

// MunicipalSource covers the Legistar endpoints the council handler uses.
type MunicipalSource interface {
	Bodies(clientID string) ([]model.CouncilBody, error)
	OfficeRecords(clientID string) ([]model.OfficeRecord, error)
	Persons(clientID string) ([]model.Person, error)
	Matters(clientID string, limit int) ([]model.Matter, error)
	Matter(clientID string, matterID int64) (*model.Matter, error)
	MatterHistory(clientID string, matterID int64) ([]model.MatterHistoryStep, error)
	MatterSponsors(clientID string, matterID int64) ([]model.MatterSponsor, error)
	MatterAttachments(clientID string, matterID int64) ([]model.MatterAttachment, error)
	Events(clientID string, limit int) ([]model.Event, error)
	EventItems(clientID string, eventID int64) ([]model.EventItem, error)
	Votes(clientID string, eventItemID int64) ([]model.VoteRecord, error)
	Name() string
}

var councilTypes = []string{
	"cities", "verify", "members", "legislation", "meetings", "votes", "matter-detail", "agenda",
}

type CouncilHandler struct {
	source MunicipalSource
	now    func() time.Time
}

func NewCouncilHandler(source MunicipalSource) *CouncilHandler {
	return &CouncilHandler{source: source, now: time.Now}
}

func (h *CouncilHandler) GetCityCouncil(c *gin.Context) {
	reqType := c.Query("type")

	switch reqType {
	case "cities":
		h.getCities(c)
	case "verify":
		h.verifyClient(c)
	case "members", "legislation", "meetings", "votes", "matter-detail", "agenda":
		city, ok := h.resolveCity(c)
		if !ok {
			return
		}
		switch reqType {
		case "members":
			h.getMembers(c, city)
		case "legislation":
			h.getLegislation(c, city)
		case "meetings":
			h.getMeetings(c, city)
		case "votes":
			h.getVotes(c, city)
		case "matter-detail":
			h.getMatterDetail(c, city)
		case "agenda":
			h.getAgenda(c, city)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "unknown or missing type parameter",
			"valid_types": councilTypes,
		})
	}
}

// resolveCity validates the city parameter against the registry. Unknown
// and known-but-unverified cities both yield 404, with the verified slugs
// as alternatives.
func (h *CouncilHandler) resolveCity(c *gin.Context) (cities.Municipality, bool) {
	cityParam := c.Query("city")
	if cityParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required, e.g. city=seattle"})
		return cities.Municipality{}, false
	}

	city, found := cities.Lookup(cityParam)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":        "unknown city: " + cityParam,
			"valid_cities": cities.VerifiedSlugs(),
		})
		return cities.Municipality{}, false
	}
	if !city.Verified {
		c.JSON(http.StatusNotFound, gin.H{
			"error":        city.Name + " is known but has not been verified for usable data",
			"valid_cities": cities.VerifiedSlugs(),
		})
		return cities.Municipality{}, false
	}
	return city, true
}

func (h *CouncilHandler) getCities(c *gin.Context) {
	verified := cities.Verified()
	res := CitiesResponse{Cities: make([]CityResponse, 0, len(verified)), Source: h.source.Name()}
	for _, m := range verified {
		res.Cities = append(res.Cities, CityResponse{
			Slug:       m.Slug,
			Name:       m.Name,
			State:      m.State,
			Population: m.Population,
			VerifiedAt: m.VerifiedAt,
			PortalURL:  m.PortalURL,
		})
	}
	c.JSON(http.StatusOK, res)
}

// verifyClient probes a candidate portal for usable data. Each probe
// failure is recorded rather than failing the report; the endpoint exists
// for onboarding, not regular traffic.
func (h *CouncilHandler) verifyClient(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client is required, e.g. type=verify&client=seattle"})
		return
	}

	report := VerifyResponse{Client: clientID}
	var notes []string

	persons, err := h.source.Persons(clientID)
	if err != nil {
		notes = append(notes, "persons: "+err.Error())
	}
	for _, p := range persons {
		if p.Active {
			report.ActivePersons++
		}
	}

	matters, err := h.source.Matters(clientID, 20)
	if err != nil {
		notes = append(notes, "matters: "+err.Error())
	}
	report.RecentMatters = len(matters)

	events, err := h.source.Events(clientID, 5)
	if err != nil {
		notes = append(notes, "events: "+err.Error())
	}
	report.HasEvents = len(events) > 0

	report.Usable = report.ActivePersons > 0 && report.RecentMatters > 0
	report.Notes = strings.Join(notes, "; ")

	c.JSON(http.StatusOK, report)
}

func (h *CouncilHandler) getMembers(c *gin.Context, city cities.Municipality) {
	// Persons are essential; bodies and office records degrade to nil and
	// the roster fallback tiers take over.
	var (
		bodies  []model.CouncilBody
		offices []model.OfficeRecord
		persons []model.Person
		perr    error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if bodies, err = h.source.Bodies(city.ClientID); err != nil {
			slog.Warn("bodies lookup failed, continuing without", "city", city.Slug, "error", err)
			bodies = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if offices, err = h.source.OfficeRecords(city.ClientID); err != nil {
			slog.Warn("office records lookup failed, continuing without", "city", city.Slug, "error", err)
			offices = nil
		}
	}()
	go func() {
		defer wg.Done()
		persons, perr = h.source.Persons(city.ClientID)
	}()
	wg.Wait()

	if perr != nil {
		slog.Error("error fetching persons", "city", city.Slug, "error", perr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": perr.Error()})
		return
	}

	members := normalize.SelectCouncilMembers(bodies, offices, persons, h.now())

	res := MembersResponse{City: city.Slug, Members: make([]MemberResponse, 0, len(members)), Source: h.source.Name()}
	for _, m := range members {
		member := MemberResponse{
			ID:      m.ID,
			Name:    m.FullName,
			Title:   m.Title,
			Body:    m.BodyName,
			Email:   m.Email,
			Website: m.Website,
		}
		if !m.Start.IsZero() {
			member.StartDate = m.Start.Format("2006-01-02")
		}
		if m.End != nil {
			member.EndDate = m.End.Format("2006-01-02")
		}
		res.Members = append(res.Members, member)
	}

	c.JSON(http.StatusOK, res)
}

func toMatterResponse(m model.Matter) MatterResponse {
	title := m.Title
	if title == "" {
		title = m.Name
	}
	return MatterResponse{
		ID:             m.ID,
		File:           m.File,
		Title:          title,
		Type:           m.Type,
		Status:         m.Status,
		Body:           m.BodyName,
		IntroducedDate: m.IntroducedDate,
		AgendaDate:     m.AgendaDate,
		PassedDate:     m.PassedDate,
	}
}

func (h *CouncilHandler) getLegislation(c *gin.Context, city cities.Municipality) {
	limit := getQueryLimit(c)

	matters, err := h.source.Matters(city.ClientID, limit)
	if err != nil {
		slog.Error("error fetching matters", "city", city.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := LegislationResponse{City: city.Slug, Matters: make([]MatterResponse, 0, len(matters)), Source: h.source.Name()}
	for _, m := range matters {
		res.Matters = append(res.Matters, toMatterResponse(m))
	}

	c.JSON(http.StatusOK, res)
}

func (h *CouncilHandler) getMeetings(c *gin.Context, city cities.Municipality) {
	limit := getQueryLimit(c)

	events, err := h.source.Events(city.ClientID, limit)
	if err != nil {
		slog.Error("error fetching events", "city", city.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := MeetingsResponse{City: city.Slug, Meetings: make([]MeetingResponse, 0, len(events)), Source: h.source.Name()}
	for _, e := range events {
		res.Meetings = append(res.Meetings, MeetingResponse{
			ID:         e.ID,
			Date:       e.Date,
			Time:       e.Time,
			Body:       e.BodyName,
			Location:   e.Location,
			AgendaURL:  e.AgendaURL,
			MinutesURL: e.MinutesURL,
			PortalURL:  e.SiteURL,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *CouncilHandler) getVotes(c *gin.Context, city cities.Municipality) {
	eventItemID, err := strconv.ParseInt(c.Query("event_item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_item_id is required, e.g. type=votes&event_item_id=12345"})
		return
	}

	votes, err := h.source.Votes(city.ClientID, eventItemID)
	if err != nil {
		slog.Error("error fetching votes", "city", city.Slug, "event_item_id", eventItemID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	values := make([]string, 0, len(votes))
	res := VotesResponse{City: city.Slug, Votes: make([]VoteResponse, 0, len(votes)), Source: h.source.Name()}
	for _, v := range votes {
		values = append(values, v.Value)
		res.Votes = append(res.Votes, VoteResponse{
			PersonID:   v.PersonID,
			PersonName: v.PersonName,
			Value:      v.Value,
			Result:     normalize.ClassifyVote(v.Value),
		})
	}

	tally := normalize.TallyVotes(values)
	res.Tally = VoteTallyResponse{
		Total:        tally.Total,
		Yes:          tally.Yes,
		No:           tally.No,
		Absent:       tally.Absent,
		Abstain:      tally.Abstain,
		Unclassified: tally.Unclassified,
	}
	if tally.HasRate {
		rate := tally.AttendanceRate
		res.Tally.AttendanceRate = &rate
	}

	c.JSON(http.StatusOK, res)
}

func (h *CouncilHandler) getMatterDetail(c *gin.Context, city cities.Municipality) {
	matterID, err := strconv.ParseInt(c.Query("matter_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "matter_id is required, e.g. type=matter-detail&matter_id=12345"})
		return
	}

	matter, err := h.source.Matter(city.ClientID, matterID)
	if err != nil {
		slog.Error("error fetching matter", "city", city.Slug, "matter_id", matterID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// History, sponsors and attachments degrade to empty on failure.
	var (
		history     []model.MatterHistoryStep
		sponsors    []model.MatterSponsor
		attachments []model.MatterAttachment
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if history, err = h.source.MatterHistory(city.ClientID, matterID); err != nil {
			slog.Warn("matter history lookup failed, continuing without", "error", err)
			history = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if sponsors, err = h.source.MatterSponsors(city.ClientID, matterID); err != nil {
			slog.Warn("matter sponsors lookup failed, continuing without", "error", err)
			sponsors = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if attachments, err = h.source.MatterAttachments(city.ClientID, matterID); err != nil {
			slog.Warn("matter attachments lookup failed, continuing without", "error", err)
			attachments = nil
		}
	}()
	wg.Wait()

	// Stage is inferred from the most recent history action; history comes
	// back newest first.
	stage, priority := normalize.DefaultStage, normalize.DefaultStagePriority
	if len(history) > 0 {
		stage, priority = normalize.ClassifyStage(history[0].Action)
	}

	res := MatterDetailResponse{
		MatterResponse: toMatterResponse(*matter),
		Stage:          stage,
		StagePriority:  priority,
		History:        make([]MatterHistoryResponse, 0, len(history)),
		Sponsors:       make([]MatterSponsorResponse, 0, len(sponsors)),
		Attachments:    make([]MatterAttachmentResponse, 0, len(attachments)),
		Source:         h.source.Name(),
	}
	for _, step := range history {
		res.History = append(res.History, MatterHistoryResponse{
			Date:   step.Date,
			Action: step.Action,
			Body:   step.BodyName,
			Result: step.Result,
		})
	}
	for _, s := range sponsors {
		res.Sponsors = append(res.Sponsors, MatterSponsorResponse{Name: s.Name, Sequence: s.Sequence})
	}
	for _, a := range attachments {
		res.Attachments = append(res.Attachments, MatterAttachmentResponse{Name: a.Name, URL: a.URL})
	}

	c.JSON(http.StatusOK, res)
}

func (h *CouncilHandler) getAgenda(c *gin.Context, city cities.Municipality) {
	eventID, err := strconv.ParseInt(c.Query("event_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required, e.g. type=agenda&event_id=12345"})
		return
	}

	items, err := h.source.EventItems(city.ClientID, eventID)
	if err != nil {
		slog.Error("error fetching agenda items", "city", city.Slug, "event_id", eventID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := AgendaResponse{City: city.Slug, Items: make([]AgendaItemResponse, 0, len(items)), Source: h.source.Name()}
	for _, it := range items {
		res.Items = append(res.Items, AgendaItemResponse{
			ID:           it.ID,
			AgendaNumber: it.AgendaNumber,
			Title:        it.Title,
			MatterID:     it.MatterID,
			MatterFile:   it.MatterFile,
			Action:       it.ActionName,
			Result:       it.Result,
		})
	}

	c.JSON(http.StatusOK, res)
}
