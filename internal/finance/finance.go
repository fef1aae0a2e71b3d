package finance

import "math"

// Input bounds and defaults for the four dashboard controls.
const (
	MinVolume = 100
	MaxVolume = 10000

	MinPrice        = 1.0
	MinVariableCost = 1.0
	MinFixedCost    = 0.0

	DefaultVolume       = 1000
	DefaultPrice        = 50.0
	DefaultVariableCost = 20.0
	DefaultFixedCost    = 5000.0
)

// Projection sweep over volume. The upper bound is inclusive, so with a step of
// 500 the last sampled volume is 9600.
const (
	ProjectionStart = MinVolume
	ProjectionEnd   = MaxVolume
	ProjectionStep  = 500
)

// Input represents the company parameters a user adjusts on the dashboard.
type Input struct {
	Volume       int
	Price        float64
	VariableCost float64
	FixedCost    float64
}

// Result contains the values derived from an Input.
type Result struct {
	Revenue           float64
	TotalVariableCost float64
	TotalCost         float64
	Profit            float64
	// MarginPercent is NaN when revenue is zero.
	MarginPercent float64
}

// ProjectionPoint is the predicted profit at one sampled volume.
type ProjectionPoint struct {
	Volume int
	Profit float64
}

// Projection is the materialized volume sweep, ordered by volume.
type Projection []ProjectionPoint

// DefaultInput returns the values the dashboard starts with.
func DefaultInput() Input {
	return Input{
		Volume:       DefaultVolume,
		Price:        DefaultPrice,
		VariableCost: DefaultVariableCost,
		FixedCost:    DefaultFixedCost,
	}
}

// Clamp returns a copy of in with every field pulled into its allowed range.
// Non-finite values are replaced with the field default first.
func (in Input) Clamp() Input {
	out := in

	if out.Volume < MinVolume {
		out.Volume = MinVolume
	}
	if out.Volume > MaxVolume {
		out.Volume = MaxVolume
	}

	out.Price = clampMin(out.Price, MinPrice, DefaultPrice)
	out.VariableCost = clampMin(out.VariableCost, MinVariableCost, DefaultVariableCost)
	out.FixedCost = clampMin(out.FixedCost, MinFixedCost, DefaultFixedCost)

	return out
}

func clampMin(v, lo, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = fallback
	}
	if v < lo {
		return lo
	}
	return v
}

// Compute derives revenue, costs, profit and margin from in.
func Compute(in Input) Result {
	volume := float64(in.Volume)

	revenue := volume * in.Price
	totalVariableCost := volume * in.VariableCost
	totalCost := in.FixedCost + totalVariableCost
	profit := revenue - totalCost

	margin := math.NaN()
	if revenue != 0 {
		margin = profit / revenue * 100.0
	}

	return Result{
		Revenue:           revenue,
		TotalVariableCost: totalVariableCost,
		TotalCost:         totalCost,
		Profit:            profit,
		MarginPercent:     margin,
	}
}

// ProfitAt returns the profit for a given volume with the other inputs held fixed.
func ProfitAt(volume int, price, variableCost, fixedCost float64) float64 {
	v := float64(volume)
	return v*price - (fixedCost + v*variableCost)
}

// Project sweeps volume from ProjectionStart to ProjectionEnd and computes the
// profit at each sampled volume.
func Project(price, variableCost, fixedCost float64) Projection {
	points := make(Projection, 0, (ProjectionEnd-ProjectionStart)/ProjectionStep+1)
	for v := ProjectionStart; v <= ProjectionEnd; v += ProjectionStep {
		points = append(points, ProjectionPoint{
			Volume: v,
			Profit: ProfitAt(v, price, variableCost, fixedCost),
		})
	}
	return points
}
