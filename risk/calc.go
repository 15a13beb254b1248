// Package risk provides position-sizing helpers for strategies.
package risk

import "math"

// Inputs describes a planned entry with a protective stop.
type Inputs struct {
	Capital    float64 // capital the sizing is based on
	RiskPct    float64 // fraction of capital to risk, e.g. 0.005
	EntryPrice float64
	StopPrice  float64
}

// Result is the sized position.
type Result struct {
	Units        float64 // unsigned; the caller picks the direction
	StopDistance float64 // price distance to the stop
	RiskAmount   float64 // capital at risk if the stop is hit
}

// Calculate sizes a position so that hitting the stop loses RiskPct of
// Capital. Units is floored to a whole number and zero when the stop sits
// on the entry.
func Calculate(in Inputs) Result {
	dist := math.Abs(in.EntryPrice - in.StopPrice)
	riskAmt := in.Capital * in.RiskPct

	units := 0.0
	if dist > 0 {
		units = math.Floor(riskAmt / dist)
	}

	return Result{
		Units:        units,
		StopDistance: dist,
		RiskAmount:   riskAmt,
	}
}

// PlannedRisk is the absolute loss if the stop is hit.
func PlannedRisk(units, entry, stop float64) float64 {
	return math.Abs(units) * math.Abs(entry-stop)
}

// RR is the reward-to-risk ratio of an entry/stop/target triple.
func RR(entry, stop, takeProfit float64) float64 {
	risk := math.Abs(entry - stop)
	reward := math.Abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}
