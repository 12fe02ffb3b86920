package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dr-settlement/internal/config"
	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"
	"dr-settlement/internal/scenario"
	"dr-settlement/internal/settlement"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "dayahead":
		cmdDayAhead(os.Args[2:])
	case "monthly":
		cmdMonthly(os.Args[2:])
	case "emergency":
		cmdEmergency(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli dayahead --scenario examples/dayahead.yaml [--config cfg.yaml] [--out results/ledger.csv]")
	fmt.Println("  cli monthly --scenario examples/monthly.yaml [--config cfg.yaml]")
	fmt.Println("  cli emergency --scenario examples/emergency.yaml [--config cfg.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - scenarios hold the input vectors and the clearing-price source")
	fmt.Println("  - dayahead can write a per-period ledger CSV via --out")
}

func loadEnvironment(cfgPath string) (settlement.Rules, *pricing.Provider) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	provider, err := cfg.ToProvider()
	if err != nil {
		panic(err)
	}
	return cfg.ToRules(), provider
}

func loadScenario(path string) *scenario.Scenario {
	if path == "" {
		fmt.Println("--scenario is required")
		os.Exit(2)
	}
	sc, err := scenario.Load(path)
	if err != nil {
		panic(err)
	}
	return sc
}

func cmdDayAhead(args []string) {
	fs := flag.NewFlagSet("dayahead", flag.ExitOnError)
	scPath := fs.String("scenario", "", "Path to YAML scenario")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional per-period ledger CSV path")
	_ = fs.Parse(args)

	sc := loadScenario(*scPath)
	if sc.DayAhead == nil {
		panic(fmt.Errorf("%w: day_ahead", scenario.ErrSectionMissing))
	}

	rules, provider := loadEnvironment(*cfgPath)

	src, err := sc.Prices.ToSource()
	if err != nil {
		panic(err)
	}

	params := settlement.DayAheadParams{
		Bids:      model.Series(sc.DayAhead.Bids),
		Baselines: model.Series(sc.DayAhead.Baselines),
		Outputs:   model.Series(sc.DayAhead.Outputs),
		Agent:     sc.DayAhead.Agent.ToContract(),
	}

	res, err := settlement.DayAhead(rules, provider, params, src)
	if err != nil {
		panic(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := settlement.WriteLedgerCSV(*outPath, res.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), *outPath)
	}

	fmt.Printf("Settlement fee: %.2f\n", res.SettlementFee)
	fmt.Printf("Assessment fee: %.2f\n", res.AssessmentFee)
	fmt.Printf("Net revenue:    %.2f (%s)\n", res.NetRevenue, res.Outcome)
	if res.PriceMeta.Adjusted {
		fmt.Printf("Note: %d price periods were adjusted to fit the bounds\n", res.PriceMeta.AdjustedPeriods)
	}
}

func cmdMonthly(args []string) {
	fs := flag.NewFlagSet("monthly", flag.ExitOnError)
	scPath := fs.String("scenario", "", "Path to YAML scenario")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	sc := loadScenario(*scPath)
	if sc.Monthly == nil {
		panic(fmt.Errorf("%w: monthly_reserve", scenario.ErrSectionMissing))
	}
	// Config is loaded for validation parity even though the monthly
	// product uses no clearing price.
	_, _ = loadEnvironment(*cfgPath)

	agent, err := scenario.Flag("agent_state", sc.Monthly.AgentState)
	if err != nil {
		panic(err)
	}
	triggered, err := scenario.Flag("day_ahead_triggered", sc.Monthly.DayAheadTriggered)
	if err != nil {
		panic(err)
	}

	res, err := settlement.MonthlyReserve(settlement.MonthlyParams{
		Agent:             agent,
		Gamma:             sc.Monthly.Gamma,
		DayAheadBids:      model.Series(sc.Monthly.DayAheadBids),
		DayAheadTriggered: triggered,
		ReserveAwards:     model.Series(sc.Monthly.ReserveAwards),
		MonthlyPrice:      sc.Monthly.MonthlyPrice,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Reserve volume: %.2f kW at %.2f\n", res.ReserveVolume, res.MonthlyPrice)
	fmt.Printf("Base revenue:   %.2f\n", res.BaseRevenue)
	if agent {
		fmt.Printf("Agent fee:      %.2f (gamma=%.2f)\n", res.AgentFee, res.Gamma)
	}
	fmt.Printf("User revenue:   %.2f\n", res.UserRevenue)
}

func cmdEmergency(args []string) {
	fs := flag.NewFlagSet("emergency", flag.ExitOnError)
	scPath := fs.String("scenario", "", "Path to YAML scenario")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	sc := loadScenario(*scPath)
	if sc.Emergency == nil {
		panic(fmt.Errorf("%w: emergency", scenario.ErrSectionMissing))
	}

	rules, provider := loadEnvironment(*cfgPath)

	src, err := sc.Prices.ToSource()
	if err != nil {
		panic(err)
	}

	res, err := settlement.Emergency(rules, provider, model.Series(sc.Emergency.Capacity), src)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Total capacity:  %.2f kW\n", res.Capacity.Sum())
	fmt.Printf("Mean emergency price: %.3f\n", res.EmergencyPrice.Mean())
	fmt.Printf("Revenue:         %.2f\n", res.Revenue)
}
