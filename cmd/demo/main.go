package main

import (
	"flag"
	"fmt"

	"dr-settlement/internal/analysis"
	"dr-settlement/internal/config"
	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"
	"dr-settlement/internal/settlement"
)

// Demo:
// - Settle a day-ahead scenario against the default price pattern
// - Settle a monthly reserve with an agent split
// - Settle an emergency dispatch
// - Synthesize a random price vector and report its statistics
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	seed := flag.Int64("seed", 42, "Seed for the random price demo")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	rules := cfg.ToRules()
	provider, err := cfg.ToProvider()
	if err != nil {
		panic(err)
	}

	fmt.Println("== Day-ahead response ==")
	dayAhead, err := settlement.DayAhead(rules, provider, settlement.DayAheadParams{
		Bids:      model.Series{100, 150, 200, 120},
		Baselines: model.Series{0, 180, 250, 140},
		Outputs:   model.Series{0, 30, 10, 25},
	}, pricing.DefaultSource())
	if err != nil {
		panic(err)
	}
	for _, row := range dayAhead.Rows {
		fmt.Printf("  period %d: effective=%.1f kW price=%.1f revenue=%.1f\n",
			row.Period, row.Effective, row.SettledPrice, row.Revenue)
	}
	fmt.Printf("  settlement=%.2f assessment=%.2f net=%.2f (%s)\n",
		dayAhead.SettlementFee, dayAhead.AssessmentFee, dayAhead.NetRevenue, dayAhead.Outcome)

	fmt.Println("== Monthly reserve (agent, gamma=0.2) ==")
	monthly, err := settlement.MonthlyReserve(settlement.MonthlyParams{
		Agent:             true,
		Gamma:             0.2,
		DayAheadBids:      model.Series{75, 85, 95, 80},
		DayAheadTriggered: true,
		ReserveAwards:     model.Series{110, 95, 140, 105},
		MonthlyPrice:      5.0,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  volume=%.2f kW base=%.2f agent=%.2f user=%.2f\n",
		monthly.ReserveVolume, monthly.BaseRevenue, monthly.AgentFee, monthly.UserRevenue)

	fmt.Println("== Emergency response ==")
	emergency, err := settlement.Emergency(rules, provider,
		model.Series{50, 80, 120, 90}, pricing.DefaultSource())
	if err != nil {
		panic(err)
	}
	fmt.Printf("  capacity=%.1f kW revenue=%.2f\n", emergency.Capacity.Sum(), emergency.Revenue)

	fmt.Println("== Random prices (correlated walk) ==")
	generated, err := provider.Generate(8, pricing.RandomSource(pricing.GenerationParams{
		Base:         model.Series{2.5},
		Fluctuation:  0.2,
		Distribution: pricing.DistCorrelatedWalk,
		Correlation:  0.6,
		Seed:         seed,
	}))
	if err != nil {
		panic(err)
	}
	fmt.Printf("  prices=%v adjusted=%v\n", generated.Prices, generated.Adjusted)

	stats, err := analysis.ComputePriceStatistics(generated.Prices, model.Series{2.5})
	if err != nil {
		panic(err)
	}
	fmt.Printf("  mean=%.3f stddev=%.3f max=%.3f min=%.3f\n", stats.Mean, stats.Stddev, stats.Max, stats.Min)
	fmt.Printf("  mean abs deviation=%.2f%% over=%.2f%% under=%.2f%%\n",
		stats.MeanAbsDeviationPct, stats.MaxOverDeviationPct, stats.MaxUnderDeviationPct)
}
