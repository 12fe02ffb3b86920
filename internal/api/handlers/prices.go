package handlers

import (
	"net/http"

	"dr-settlement/internal/analysis"
	"dr-settlement/internal/api/models"
	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PricesHandler handles clearing-price generation requests
type PricesHandler struct {
	provider *pricing.Provider
}

// NewPricesHandler creates a new prices handler
func NewPricesHandler(provider *pricing.Provider) *PricesHandler {
	return &PricesHandler{provider: provider}
}

// Generate handles POST /api/v1/prices/generate
func (h *PricesHandler) Generate(c *gin.Context) {
	var req models.GeneratePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	src, err := toSource(req.PriceSource)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE_SOURCE", err)
		return
	}

	res, err := h.provider.Generate(req.Periods, src)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	resp := models.GeneratePricesResponse{
		ID:        uuid.NewString(),
		Prices:    res.Prices,
		PriceMeta: toPriceMeta(res),
	}

	// Statistics are reported against the base the caller supplied;
	// for the default and custom modes the vector is its own base.
	base := model.Series(req.PriceSource.Base)
	if len(base) == 0 {
		base = res.Prices
	}
	if stats, err := analysis.ComputePriceStatistics(res.Prices, base); err == nil {
		resp.Statistics = &models.PriceStatistics{
			Count:                stats.Count,
			Mean:                 stats.Mean,
			Stddev:               stats.Stddev,
			Max:                  stats.Max,
			Min:                  stats.Min,
			DeviationsPct:        stats.DeviationsPct,
			MeanAbsDeviationPct:  stats.MeanAbsDeviationPct,
			MaxOverDeviationPct:  stats.MaxOverDeviationPct,
			MaxUnderDeviationPct: stats.MaxUnderDeviationPct,
		}
	}

	c.JSON(http.StatusOK, resp)
}
