package handlers

import (
	"net/http"

	"dr-settlement/internal/api/models"
	"dr-settlement/internal/model"
	"dr-settlement/internal/settlement"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MonthlyHandler handles monthly reserve settlement requests
type MonthlyHandler struct{}

// NewMonthlyHandler creates a new monthly reserve handler
func NewMonthlyHandler() *MonthlyHandler {
	return &MonthlyHandler{}
}

// Settle handles POST /api/v1/settlement/monthly-reserve
func (h *MonthlyHandler) Settle(c *gin.Context) {
	var req models.MonthlyReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	agent, err := flag01("agent_state", req.AgentState)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_AGENT", err)
		return
	}
	triggered, err := flag01("day_ahead_triggered", req.DayAheadTriggered)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	params := settlement.MonthlyParams{
		Agent:             agent,
		Gamma:             req.Gamma,
		DayAheadBids:      model.Series(req.DayAheadBids),
		DayAheadTriggered: triggered,
		ReserveAwards:     model.Series(req.ReserveAwards),
	}
	if req.MonthlyPrice != nil {
		params.MonthlyPrice = *req.MonthlyPrice
	}

	res, err := settlement.MonthlyReserve(params)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MonthlyReserveResponse{
		ID:            uuid.NewString(),
		Status:        "completed",
		ReserveVolume: res.ReserveVolume,
		MonthlyPrice:  res.MonthlyPrice,
		BaseRevenue:   res.BaseRevenue,
		UserRevenue:   res.UserRevenue,
		AgentFee:      res.AgentFee,
		Gamma:         res.Gamma,
	})
}
