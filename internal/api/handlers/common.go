package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"dr-settlement/internal/api/models"
	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"

	"github.com/gin-gonic/gin"
)

// toSource resolves a request's price-source block into the core's
// tagged union. A missing mode means the default pattern.
func toSource(req models.PriceSourceRequest) (pricing.Source, error) {
	switch pricing.Mode(req.Mode) {
	case "", pricing.ModeDefault:
		return pricing.DefaultSource(), nil
	case pricing.ModeCustom:
		return pricing.CustomSource(model.Series(req.Custom)), nil
	case pricing.ModeRandom:
		return pricing.RandomSource(pricing.GenerationParams{
			Base:         model.Series(req.Base),
			Fluctuation:  req.Fluctuation,
			Distribution: pricing.Distribution(req.Distribution),
			Correlation:  req.Correlation,
			Seed:         req.Seed,
		}), nil
	case pricing.ModeForecast:
		return pricing.Source{Mode: pricing.ModeForecast}, nil
	default:
		return pricing.Source{}, fmt.Errorf("unsupported price source mode %q", req.Mode)
	}
}

func toContract(req *models.AgentRequest) *model.AgentContract {
	if req == nil {
		return nil
	}
	return &model.AgentContract{
		Mode:            model.AgentMode(req.Mode),
		FloorPrice:      req.FloorPrice,
		ShareRatio:      req.ShareRatio,
		AssessmentShare: req.AssessmentShare,
	}
}

func toPriceMeta(res *pricing.Result) models.PriceMeta {
	return models.PriceMeta{
		Mode:            string(res.Mode),
		Distribution:    string(res.Distribution),
		Adjusted:        res.Adjusted,
		AdjustedPeriods: res.AdjustedPeriods,
		MeanBasePrice:   res.MeanBase,
	}
}

func respondError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// respondCoreError maps engine errors onto the API's error codes.
func respondCoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrForecastNotImplemented):
		respondError(c, http.StatusNotImplemented, "NOT_IMPLEMENTED", err)
	case errors.Is(err, model.ErrLengthMismatch), errors.Is(err, model.ErrEmptySeries):
		respondError(c, http.StatusBadRequest, "INVALID_VECTOR", err)
	case errors.Is(err, pricing.ErrInvalidPeriodCount):
		respondError(c, http.StatusBadRequest, "INVALID_PRICE_SOURCE", err)
	default:
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
	}
}

// flag01 enforces the rule set's 0/1 flag convention at the boundary.
func flag01(name string, v int) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%s must be 0 or 1, got %d", name, v)
	}
}
