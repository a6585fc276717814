package handler

import (
	"log/slog"
	"net/http"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/gin-gonic/gin"
)

// FederalSource is the slice of the Congress.gov client the bills list
// endpoint needs.
type FederalSource interface {
	RecentBills(limit, offset int) ([]model.LegislativeItem, error)
	Name() string
}

type BillsHandler struct {
	// nil when no CONGRESS_API_KEY is configured
	source FederalSource
}

func NewBillsHandler(source FederalSource) *BillsHandler {
	return &BillsHandler{source: source}
}

func toBillResponse(item model.LegislativeItem) BillResponse {
	return BillResponse{
		Congress:         item.Congress,
		Type:             item.Type,
		Number:           item.Number,
		Title:            item.Title,
		IntroducedDate:   item.IntroducedDate,
		LatestActionText: item.LatestActionText,
		LatestActionDate: item.LatestActionDate,
		URL:              item.URL,
		Stage:            item.Stage,
		StagePriority:    item.StagePriority,
	}
}

func (h *BillsHandler) GetBills(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CONGRESS_API_KEY is not configured"})
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	items, err := h.source.RecentBills(limit, offset)
	if err != nil {
		slog.Error("error fetching recent bills", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bills := make([]BillResponse, 0, len(items))
	for _, item := range items {
		bills = append(bills, toBillResponse(item))
	}

	c.JSON(http.StatusOK, BillsResponse{
		Bills:  bills,
		Source: h.source.Name(),
	})
}
