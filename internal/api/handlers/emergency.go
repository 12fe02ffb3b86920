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

// EmergencyHandler handles emergency response settlement requests
type EmergencyHandler struct {
	rules    settlement.Rules
	provider *pricing.Provider
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(rules settlement.Rules, provider *pricing.Provider) *EmergencyHandler {
	return &EmergencyHandler{rules: rules, provider: provider}
}

// Settle handles POST /api/v1/settlement/emergency
func (h *EmergencyHandler) Settle(c *gin.Context) {
	var req models.EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	src, err := toSource(req.PriceSource)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE_SOURCE", err)
		return
	}

	res, err := settlement.Emergency(h.rules, h.provider, model.Series(req.Capacity), src)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EmergencyResponse{
		ID:             uuid.NewString(),
		Status:         "completed",
		Capacity:       res.Capacity,
		ClearingPrice:  res.ClearingPrice,
		EmergencyPrice: res.EmergencyPrice,
		PriceMeta:      toPriceMeta(res.PriceMeta),
		Revenue:        res.Revenue,
	})
}
