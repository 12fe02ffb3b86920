package settlement

import (
	"errors"

	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"
)

// DayAheadParams are the inputs to the day-ahead response product.
// Bids, Baselines and Outputs must cover the same periods. Agent, when
// non-nil, routes settlement through the agent's contract terms.
type DayAheadParams struct {
	Bids      model.Series
	Baselines model.Series
	Outputs   model.Series
	Agent     *model.AgentContract
}

func (p DayAheadParams) Validate() error {
	if len(p.Bids) == 0 {
		return errors.New("bid vector must not be empty")
	}
	if err := model.SameLen(p.Bids, p.Baselines, p.Outputs); err != nil {
		return err
	}
	if p.Agent != nil {
		return p.Agent.Validate()
	}
	return nil
}

// DayAheadResult is the settled day-ahead response revenue.
type DayAheadResult struct {
	EffectiveCapacity model.Series
	ClearingPrice     model.Series
	// UserPrice is the per-period price the end user is settled at.
	// It is nil when no agent is involved.
	UserPrice model.Series
	PriceMeta *pricing.Result

	SettlementFee float64
	AssessmentFee float64
	NetRevenue    float64
	Outcome       model.Outcome

	Rows []PeriodRow
}

// DayAhead settles the day-ahead response product.
//
// Without an agent the settlement fee uses the clearing price and the
// full assessment penalty applies. With an agent the settlement fee
// uses the user price derived from the contract, and the penalty is
// scaled by the contract's assessment share (the agent absorbs the
// rest).
func DayAhead(rules Rules, provider *pricing.Provider, params DayAheadParams, src pricing.Source) (*DayAheadResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	effective, err := EffectiveCapacity(rules, params.Bids, params.Baselines, params.Outputs)
	if err != nil {
		return nil, err
	}

	priceRes, err := provider.Generate(len(params.Bids), src)
	if err != nil {
		return nil, err
	}
	clearing := priceRes.Prices

	settledPrice := clearing
	assessmentShare := 1.0
	var userPrice model.Series

	if agent := params.Agent; agent != nil {
		switch agent.Mode {
		case model.AgentFloorShare:
			userPrice, err = UserPrice(agent.FloorPrice, clearing, agent.ShareRatio)
			if err != nil {
				return nil, err
			}
		case model.AgentFixedPrice:
			userPrice = make(model.Series, len(clearing))
			for i := range userPrice {
				userPrice[i] = agent.FloorPrice
			}
		}
		settledPrice = userPrice
		assessmentShare = agent.AssessmentShare
	}

	settlementFee, err := SettlementFee(effective, settledPrice)
	if err != nil {
		return nil, err
	}
	assessmentFee, err := AssessmentFee(rules, params.Bids, effective, clearing)
	if err != nil {
		return nil, err
	}
	assessmentFee *= assessmentShare

	net := settlementFee - assessmentFee

	rows := make([]PeriodRow, len(params.Bids))
	cum := 0.0
	for i := range params.Bids {
		revenue := effective[i] * settledPrice[i]
		cum += revenue
		rows[i] = PeriodRow{
			Period:        i,
			Bid:           params.Bids[i],
			Baseline:      params.Baselines[i],
			Output:        params.Outputs[i],
			Actual:        params.Baselines[i] - params.Outputs[i],
			Effective:     effective[i],
			ClearingPrice: clearing[i],
			SettledPrice:  settledPrice[i],
			Revenue:       revenue,
			CumRevenue:    cum,
		}
	}

	return &DayAheadResult{
		EffectiveCapacity: effective,
		ClearingPrice:     clearing,
		UserPrice:         userPrice,
		PriceMeta:         priceRes,
		SettlementFee:     settlementFee,
		AssessmentFee:     assessmentFee,
		NetRevenue:        net,
		Outcome:           model.OutcomeFromNetRevenue(net),
		Rows:              rows,
	}, nil
}
