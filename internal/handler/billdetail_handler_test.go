package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/pkg/llm"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeBillDetailSource struct {
	item       *model.LegislativeItem
	sponsors   []model.Sponsor
	actions    []model.BillAction
	summaries  []model.BillSummary
	cosponsors []model.Cosponsor
	committees []model.BillCommittee
	subjects   []string

	billErr      error
	secondaryErr error
}

func (f *fakeBillDetailSource) Bill(congress int, billType, number string) (*model.LegislativeItem, []model.Sponsor, error) {
	return f.item, f.sponsors, f.billErr
}

func (f *fakeBillDetailSource) Actions(congress int, billType, number string) ([]model.BillAction, error) {
	return f.actions, f.secondaryErr
}

func (f *fakeBillDetailSource) Summaries(congress int, billType, number string) ([]model.BillSummary, error) {
	return f.summaries, f.secondaryErr
}

func (f *fakeBillDetailSource) Cosponsors(congress int, billType, number string) ([]model.Cosponsor, error) {
	return f.cosponsors, f.secondaryErr
}

func (f *fakeBillDetailSource) Committees(congress int, billType, number string) ([]model.BillCommittee, error) {
	return f.committees, f.secondaryErr
}

func (f *fakeBillDetailSource) Subjects(congress int, billType, number string) ([]string, error) {
	return f.subjects, f.secondaryErr
}

func (f *fakeBillDetailSource) Name() string { return "congress.gov" }

type fakeRewriter struct {
	input  llm.RewriteInput
	called bool
	err    error
}

func (f *fakeRewriter) Rewrite(input llm.RewriteInput) (*llm.RewriteResult, error) {
	f.called = true
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &llm.RewriteResult{PlainSummary: "Plain words.", ModelUsed: "fake"}, nil
}

func newBillDetailRouter(source BillDetailSource, rewriter llm.Rewriter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBillDetailHandler(source, rewriter)
	r.GET("/bill-detail", h.GetBillDetail)
	return r
}

func detailFixture() *fakeBillDetailSource {
	return &fakeBillDetailSource{
		item: &model.LegislativeItem{
			Congress: 119, Type: "hr", Number: "187",
			Title: "An act", Stage: "Introduced", StagePriority: 5,
		},
		sponsors:  []model.Sponsor{{Name: "Rep. Doe", Party: "D", State: "WA", District: "7"}},
		actions:   []model.BillAction{{Date: "2025-03-02", Chamber: "House", Text: "Referred to committee."}},
		summaries: []model.BillSummary{{Text: "Old text.", Date: "2025-03-01"}, {Text: "New text.", Date: "2025-04-01"}},
		subjects:  []string{"Health"},
	}
}

func TestGetBillDetail_MissingParams(t *testing.T) {
	r := newBillDetailRouter(detailFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bill-detail?type=hr", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBillDetail_EssentialLookupFails(t *testing.T) {
	source := detailFixture()
	source.billErr = errors.New("upstream 500")

	r := newBillDetailRouter(source, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bill-detail?type=hr&number=187", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetBillDetail_SecondaryFailuresDegrade(t *testing.T) {
	source := detailFixture()
	source.secondaryErr = errors.New("rate limited")

	r := newBillDetailRouter(source, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bill-detail?type=hr&number=187", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BillDetailResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "An act", res.Title)
	assert.Equal(t, 0, len(res.Actions))
	assert.Equal(t, 0, len(res.Summaries))
	assert.Equal(t, 0, len(res.Subjects))
}

func TestGetBillDetail_RewritesNewestSummary(t *testing.T) {
	rewriter := &fakeRewriter{}

	r := newBillDetailRouter(detailFixture(), rewriter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bill-detail?type=hr&number=187", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, rewriter.called)
	assert.Equal(t, "New text.", rewriter.input.Summary)

	var res BillDetailResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Plain words.", res.PlainSummary)
}

func TestGetBillDetail_NoRewriterConfigured(t *testing.T) {
	r := newBillDetailRouter(detailFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bill-detail?type=hr&number=187", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BillDetailResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "", res.PlainSummary)
}

func TestGetBillDetail_RewriteFailureDropped(t *testing.T) {
	rewriter := &fakeRewriter{err: errors.New("provider down")}

	r := newBillDetailRouter(detailFixture(), rewriter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bill-detail?type=hr&number=187", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BillDetailResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "", res.PlainSummary)
}
