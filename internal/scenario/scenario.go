package scenario

import (
	"errors"
	"fmt"
	"os"

	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk input shape (YAML) for a settlement run. A
// file carries the section for the product being settled plus an
// optional price source; vectors may be written either as YAML lists
// or as comma-separated strings ("100,150,200").
type Scenario struct {
	DayAhead  *DayAheadScenario  `yaml:"day_ahead"`
	Monthly   *MonthlyScenario   `yaml:"monthly_reserve"`
	Emergency *EmergencyScenario `yaml:"emergency"`
	Prices    *PriceScenario     `yaml:"prices"`
}

type DayAheadScenario struct {
	Bids      Vector         `yaml:"bids"`
	Baselines Vector         `yaml:"baselines"`
	Outputs   Vector         `yaml:"outputs"`
	Agent     *AgentScenario `yaml:"agent"`
}

type AgentScenario struct {
	Mode            string  `yaml:"mode"` // floor_share | fixed_price
	FloorPrice      float64 `yaml:"floor_price"`
	ShareRatio      float64 `yaml:"share_ratio"`
	AssessmentShare float64 `yaml:"assessment_share"`
}

type MonthlyScenario struct {
	// AgentState and DayAheadTriggered keep the rule set's 0/1 flag
	// convention; anything else is rejected.
	AgentState        int     `yaml:"agent_state"`
	Gamma             float64 `yaml:"gamma"`
	DayAheadBids      Vector  `yaml:"day_ahead_bids"`
	DayAheadTriggered int     `yaml:"day_ahead_triggered"`
	ReserveAwards     Vector  `yaml:"reserve_awards"`
	MonthlyPrice      float64 `yaml:"monthly_price"`
}

type EmergencyScenario struct {
	Capacity Vector `yaml:"capacity"`
}

type PriceScenario struct {
	Mode         string  `yaml:"mode"` // default | custom | random | forecast
	Custom       Vector  `yaml:"custom"`
	Base         Vector  `yaml:"base"`
	Fluctuation  float64 `yaml:"fluctuation"`
	Distribution string  `yaml:"distribution"`
	Correlation  float64 `yaml:"correlation"`
	Seed         *int64  `yaml:"seed"`
}

// Load reads and parses a scenario file. Field-level format errors
// surface here, before the core ever runs.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// ToSource resolves the price section into a pricing.Source. A missing
// section means the default pattern.
func (p *PriceScenario) ToSource() (pricing.Source, error) {
	if p == nil || p.Mode == "" || p.Mode == string(pricing.ModeDefault) {
		return pricing.DefaultSource(), nil
	}
	switch pricing.Mode(p.Mode) {
	case pricing.ModeCustom:
		return pricing.CustomSource(model.Series(p.Custom)), nil
	case pricing.ModeRandom:
		return pricing.RandomSource(pricing.GenerationParams{
			Base:         model.Series(p.Base),
			Fluctuation:  p.Fluctuation,
			Distribution: pricing.Distribution(p.Distribution),
			Correlation:  p.Correlation,
			Seed:         p.Seed,
		}), nil
	case pricing.ModeForecast:
		return pricing.Source{Mode: pricing.ModeForecast}, nil
	default:
		return pricing.Source{}, fmt.Errorf("unsupported price mode %q", p.Mode)
	}
}

// ToContract converts the agent section into a core contract.
func (a *AgentScenario) ToContract() *model.AgentContract {
	if a == nil {
		return nil
	}
	return &model.AgentContract{
		Mode:            model.AgentMode(a.Mode),
		FloorPrice:      a.FloorPrice,
		ShareRatio:      a.ShareRatio,
		AssessmentShare: a.AssessmentShare,
	}
}

// Flag converts a 0/1 scenario flag into a bool, rejecting other values.
func Flag(name string, v int) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%s must be 0 or 1, got %d", name, v)
	}
}

// ErrSectionMissing is returned when a scenario file lacks the section
// the requested settlement product needs.
var ErrSectionMissing = errors.New("scenario file is missing the requested section")
