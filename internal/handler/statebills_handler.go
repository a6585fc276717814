package handler

import (
	"log/slog"
	"net/http"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/states"
	"github.com/gin-gonic/gin"
)

type StateSource interface {
	SearchBills(jurisdiction string, limit, offset int) ([]model.StateBill, model.Page, error)
	Name() string
}

type StateBillsHandler struct {
	source StateSource
}

func NewStateBillsHandler(source StateSource) *StateBillsHandler {
	return &StateBillsHandler{source: source}
}

func toStateBillResponse(b model.StateBill) StateBillResponse {
	return StateBillResponse{
		Identifier:       b.Identifier,
		Type:             b.Type,
		Number:           b.Number,
		Session:          b.Session,
		Jurisdiction:     b.Jurisdiction,
		Title:            b.Title,
		IntroducedDate:   b.IntroducedDate,
		LatestActionText: b.LatestActionText,
		LatestActionDate: b.LatestActionDate,
		URL:              b.URL,
		Stage:            b.Stage,
		StagePriority:    b.StagePriority,
	}
}

func (h *StateBillsHandler) GetStateBills(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OPENSTATES_API_KEY is not configured"})
		return
	}

	stateParam := c.Query("state")
	if stateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state is required, e.g. state=NC or state=North+Carolina"})
		return
	}

	code, ok := states.Resolve(stateParam)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown state: " + stateParam})
		return
	}
	jurisdiction, _ := states.Name(code)

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	bills, page, err := h.source.SearchBills(jurisdiction, limit, offset)
	if err != nil {
		slog.Error("error fetching state bills", "state", code, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	billRes := make([]StateBillResponse, 0, len(bills))
	for _, b := range bills {
		billRes = append(billRes, toStateBillResponse(b))
	}

	c.JSON(http.StatusOK, StateBillsResponse{
		Bills: billRes,
		Pagination: PaginationResponse{
			Limit:         page.Limit,
			Offset:        page.Offset,
			Returned:      page.Returned,
			TotalEstimate: page.TotalEstimate,
		},
		Source: h.source.Name(),
	})
}
