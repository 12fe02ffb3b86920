package handlers

import (
	"net/http"

	"dr-settlement/internal/api/models"
	"dr-settlement/internal/pricing"
	"dr-settlement/internal/settlement"

	"github.com/gin-gonic/gin"
)

// RulesHandler reports the rule constants the server settles with
type RulesHandler struct {
	rules    settlement.Rules
	provider *pricing.Provider
}

// NewRulesHandler creates a new rules handler
func NewRulesHandler(rules settlement.Rules, provider *pricing.Provider) *RulesHandler {
	return &RulesHandler{rules: rules, provider: provider}
}

// Get handles GET /api/v1/rules
func (h *RulesHandler) Get(c *gin.Context) {
	bounds := h.provider.Bounds()
	c.JSON(http.StatusOK, models.RulesResponse{
		BidThresholdRate:    h.rules.BidThresholdRate,
		ExcessCreditRate:    h.rules.ExcessCreditRate,
		AssessmentPriceRate: h.rules.AssessmentPriceRate,
		ShortfallRate:       h.rules.ShortfallRate,
		EmergencyPriceRate:  h.rules.EmergencyPriceRate,
		PriceFloor:          bounds.Floor,
		PriceCeiling:        bounds.Ceiling,
		DefaultPattern:      h.provider.Pattern(),
	})
}
