package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeFederalSource struct {
	bills []model.LegislativeItem
	err   error
}

func (f *fakeFederalSource) RecentBills(limit, offset int) ([]model.LegislativeItem, error) {
	return f.bills, f.err
}

func (f *fakeFederalSource) Name() string { return "congress.gov" }

func newBillsRouter(source FederalSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBillsHandler(source)
	r.GET("/bills", h.GetBills)
	return r
}

func TestGetBills_ReturnsBills(t *testing.T) {
	source := &fakeFederalSource{
		bills: []model.LegislativeItem{
			{
				Congress:      119,
				Type:          "hr",
				Number:        "187",
				Title:         "An act",
				Stage:         "In Committee",
				StagePriority: 4,
				URL:           "https://www.congress.gov/bill/119th-congress/house-bill/187",
			},
		},
	}

	r := newBillsRouter(source)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bills?limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res BillsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Bills))
	assert.Equal(t, "hr", res.Bills[0].Type)
	assert.Equal(t, "In Committee", res.Bills[0].Stage)
	assert.Equal(t, "congress.gov", res.Source)
}

func TestGetBills_NoSourceConfigured(t *testing.T) {
	r := newBillsRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bills", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "CONGRESS_API_KEY is not configured", res["error"])
}

func TestGetBills_UpstreamError(t *testing.T) {
	source := &fakeFederalSource{err: errors.New("upstream timeout")}

	r := newBillsRouter(source)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bills", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
