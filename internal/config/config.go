package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"
	"dr-settlement/internal/settlement"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML) for the facade
// layer. The calculation core never reads configuration itself; these
// values are resolved here and passed in as typed arguments.
type Config struct {
	Bounds BoundsConfig `yaml:"bounds"`
	// DefaultPattern overrides the built-in reference price cycle.
	DefaultPattern []float64 `yaml:"default_pattern"`
	// Optional: load rule constants from a separate YAML. If both
	// RulesFile and Rules are provided, Rules overrides RulesFile.
	RulesFile string      `yaml:"rules_file"`
	Rules     RulesConfig `yaml:"rules"`
}

type BoundsConfig struct {
	Floor   float64 `yaml:"floor"`
	Ceiling float64 `yaml:"ceiling"`
}

type RulesConfig struct {
	BidThresholdRate    float64 `yaml:"bid_threshold_rate"`
	ExcessCreditRate    float64 `yaml:"excess_credit_rate"`
	AssessmentPriceRate float64 `yaml:"assessment_price_rate"`
	ShortfallRate       float64 `yaml:"shortfall_rate"`
	EmergencyPriceRate  float64 `yaml:"emergency_price_rate"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Bounds: BoundsConfig{
			Floor:   model.DefaultPriceFloor,
			Ceiling: model.DefaultPriceCeiling,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default the bounds if the file leaves them out entirely.
	if c.Bounds == (BoundsConfig{}) {
		c.Bounds = Default().Bounds
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.RulesFile != "" {
		rulesPath := c.RulesFile
		if !filepath.IsAbs(rulesPath) {
			// Prefer paths relative to the config file directory, but
			// fall back to the path as given (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), rulesPath)
			if _, err := os.Stat(cand); err == nil {
				rulesPath = cand
			}
		}
		loaded, err := loadRulesFile(rulesPath)
		if err != nil {
			return nil, err
		}
		c.Rules = MergeRules(loaded, c.Rules)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToBounds().Validate(); err != nil {
		return fmt.Errorf("bounds config invalid: %w", err)
	}
	if err := c.ToRules().Validate(); err != nil {
		return fmt.Errorf("rules config invalid: %w", err)
	}
	return nil
}

func (c *Config) ToBounds() model.PriceBounds {
	return model.PriceBounds{Floor: c.Bounds.Floor, Ceiling: c.Bounds.Ceiling}
}

// ToRules overlays any non-zero rule overrides onto the defaults.
func (c *Config) ToRules() settlement.Rules {
	rules := settlement.DefaultRules()
	if c.Rules.BidThresholdRate != 0 {
		rules.BidThresholdRate = c.Rules.BidThresholdRate
	}
	if c.Rules.ExcessCreditRate != 0 {
		rules.ExcessCreditRate = c.Rules.ExcessCreditRate
	}
	if c.Rules.AssessmentPriceRate != 0 {
		rules.AssessmentPriceRate = c.Rules.AssessmentPriceRate
	}
	if c.Rules.ShortfallRate != 0 {
		rules.ShortfallRate = c.Rules.ShortfallRate
	}
	if c.Rules.EmergencyPriceRate != 0 {
		rules.EmergencyPriceRate = c.Rules.EmergencyPriceRate
	}
	return rules
}

// ToProvider builds the clearing-price provider the config describes.
func (c *Config) ToProvider() (*pricing.Provider, error) {
	return pricing.NewProvider(c.ToBounds(), model.Series(c.DefaultPattern))
}

type rulesFileWrapper struct {
	Rules RulesConfig `yaml:"rules"`
}

func loadRulesFile(path string) (RulesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RulesConfig{}, err
	}
	var w rulesFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return RulesConfig{}, err
	}
	return w.Rules, nil
}

// MergeRules overlays non-zero fields from override onto base.
func MergeRules(base, override RulesConfig) RulesConfig {
	out := base
	if override.BidThresholdRate != 0 {
		out.BidThresholdRate = override.BidThresholdRate
	}
	if override.ExcessCreditRate != 0 {
		out.ExcessCreditRate = override.ExcessCreditRate
	}
	if override.AssessmentPriceRate != 0 {
		out.AssessmentPriceRate = override.AssessmentPriceRate
	}
	if override.ShortfallRate != 0 {
		out.ShortfallRate = override.ShortfallRate
	}
	if override.EmergencyPriceRate != 0 {
		out.EmergencyPriceRate = override.EmergencyPriceRate
	}
	return out
}
