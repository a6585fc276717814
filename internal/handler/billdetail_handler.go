package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/pkg/llm"
	"github.com/gin-gonic/gin"
)

// defaultCongress is assumed when the congress parameter is absent.
const defaultCongress = 119

// BillDetailSource covers the per-bill endpoints of the federal upstream.
// Bill is the essential lookup; the rest degrade to empty values.
type BillDetailSource interface {
	Bill(congress int, billType, number string) (*model.LegislativeItem, []model.Sponsor, error)
	Actions(congress int, billType, number string) ([]model.BillAction, error)
	Summaries(congress int, billType, number string) ([]model.BillSummary, error)
	Cosponsors(congress int, billType, number string) ([]model.Cosponsor, error)
	Committees(congress int, billType, number string) ([]model.BillCommittee, error)
	Subjects(congress int, billType, number string) ([]string, error)
	Name() string
}

type BillDetailHandler struct {
	source   BillDetailSource
	rewriter llm.Rewriter // nil when no provider key is configured
}

func NewBillDetailHandler(source BillDetailSource, rewriter llm.Rewriter) *BillDetailHandler {
	return &BillDetailHandler{source: source, rewriter: rewriter}
}

func (h *BillDetailHandler) GetBillDetail(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CONGRESS_API_KEY is not configured"})
		return
	}

	billType := c.Query("type")
	number := c.Query("number")
	if billType == "" || number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and number are required, e.g. type=hr&number=187"})
		return
	}
	congress := getQueryInt("congress", defaultCongress, c)

	item, sponsors, err := h.source.Bill(congress, billType, number)
	if err != nil {
		slog.Error("error fetching bill", "congress", congress, "type", billType, "number", number, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Secondary lookups run concurrently and degrade to empty on failure;
	// each goroutine owns exactly one result slot.
	var (
		actions    []model.BillAction
		summaries  []model.BillSummary
		cosponsors []model.Cosponsor
		committees []model.BillCommittee
		subjects   []string
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		var err error
		if actions, err = h.source.Actions(congress, billType, number); err != nil {
			slog.Warn("actions lookup failed, continuing without", "error", err)
			actions = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if summaries, err = h.source.Summaries(congress, billType, number); err != nil {
			slog.Warn("summaries lookup failed, continuing without", "error", err)
			summaries = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if cosponsors, err = h.source.Cosponsors(congress, billType, number); err != nil {
			slog.Warn("cosponsors lookup failed, continuing without", "error", err)
			cosponsors = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if committees, err = h.source.Committees(congress, billType, number); err != nil {
			slog.Warn("committees lookup failed, continuing without", "error", err)
			committees = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if subjects, err = h.source.Subjects(congress, billType, number); err != nil {
			slog.Warn("subjects lookup failed, continuing without", "error", err)
			subjects = nil
		}
	}()
	wg.Wait()

	plainSummary := h.rewriteBestSummary(item.Title, summaries)

	res := BillDetailResponse{
		BillResponse: toBillResponse(*item),
		Sponsors:     make([]SponsorResponse, 0, len(sponsors)),
		Cosponsors:   make([]CosponsorResponse, 0, len(cosponsors)),
		Actions:      make([]BillActionResponse, 0, len(actions)),
		Summaries:    make([]BillSummaryResponse, 0, len(summaries)),
		Committees:   make([]BillCommitteeResponse, 0, len(committees)),
		Subjects:     subjects,
		PlainSummary: plainSummary,
		Source:       h.source.Name(),
	}
	if res.Subjects == nil {
		res.Subjects = []string{}
	}

	for _, s := range sponsors {
		res.Sponsors = append(res.Sponsors, SponsorResponse{Name: s.Name, Party: s.Party, State: s.State, District: s.District})
	}
	for _, cs := range cosponsors {
		res.Cosponsors = append(res.Cosponsors, CosponsorResponse{
			SponsorResponse: SponsorResponse{Name: cs.Name, Party: cs.Party, State: cs.State, District: cs.District},
			SponsoredDate:   cs.SponsoredDate,
		})
	}
	for _, a := range actions {
		res.Actions = append(res.Actions, BillActionResponse{Date: a.Date, Chamber: a.Chamber, Text: a.Text})
	}
	for _, s := range summaries {
		res.Summaries = append(res.Summaries, BillSummaryResponse{Text: s.Text, Date: s.Date, VersionCode: s.VersionCode})
	}
	for _, cm := range committees {
		res.Committees = append(res.Committees, BillCommitteeResponse{Name: cm.Name, Chamber: cm.Chamber, Type: cm.Type})
	}

	c.JSON(http.StatusOK, res)
}

// rewriteBestSummary runs the plain-language rewrite over the newest
// summary. The upstream returns summaries oldest first, so the last element
// is the best available text. Skipped when no provider is configured,
// dropped on failure.
func (h *BillDetailHandler) rewriteBestSummary(title string, summaries []model.BillSummary) string {
	if h.rewriter == nil || len(summaries) == 0 {
		return ""
	}

	best := summaries[len(summaries)-1]
	result, err := h.rewriter.Rewrite(llm.RewriteInput{Title: title, Summary: best.Text})
	if err != nil {
		slog.Warn("plain-language rewrite failed, continuing without", "error", err)
		return ""
	}
	return result.PlainSummary
}
