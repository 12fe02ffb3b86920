package handlers

import (
	"net/http"

	"dr-settlement/internal/api/models"
	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"
	"dr-settlement/internal/settlement"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DayAheadHandler handles day-ahead settlement requests
type DayAheadHandler struct {
	rules    settlement.Rules
	provider *pricing.Provider
}

// NewDayAheadHandler creates a new day-ahead handler
func NewDayAheadHandler(rules settlement.Rules, provider *pricing.Provider) *DayAheadHandler {
	return &DayAheadHandler{rules: rules, provider: provider}
}

// Settle handles POST /api/v1/settlement/day-ahead
func (h *DayAheadHandler) Settle(c *gin.Context) {
	var req models.DayAheadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	src, err := toSource(req.PriceSource)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE_SOURCE", err)
		return
	}

	params := settlement.DayAheadParams{
		Bids:      model.Series(req.Bids),
		Baselines: model.Series(req.Baselines),
		Outputs:   model.Series(req.Outputs),
		Agent:     toContract(req.Agent),
	}

	res, err := settlement.DayAhead(h.rules, h.provider, params, src)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	resp := models.DayAheadResponse{
		ID:                uuid.NewString(),
		Status:            "completed",
		EffectiveCapacity: res.EffectiveCapacity,
		ClearingPrice:     res.ClearingPrice,
		UserPrice:         res.UserPrice,
		PriceMeta:         toPriceMeta(res.PriceMeta),
		SettlementFee:     res.SettlementFee,
		AssessmentFee:     res.AssessmentFee,
		NetRevenue:        res.NetRevenue,
		Outcome:           string(res.Outcome),
	}
	if req.Options.IncludePeriods {
		resp.Periods = make([]models.PeriodRow, len(res.Rows))
		for i, r := range res.Rows {
			resp.Periods[i] = models.PeriodRow{
				Period:        r.Period,
				Bid:           r.Bid,
				Baseline:      r.Baseline,
				Output:        r.Output,
				Actual:        r.Actual,
				Effective:     r.Effective,
				ClearingPrice: r.ClearingPrice,
				SettledPrice:  r.SettledPrice,
				Revenue:       r.Revenue,
				CumRevenue:    r.CumRevenue,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
