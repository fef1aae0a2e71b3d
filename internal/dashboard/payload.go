package dashboard

import (
	"math"

	"github.com/Simplici0/growthboard/internal/chart"
)

// InputPayload is the JSON form of finance.Input.
type InputPayload struct {
	Volume       int     `json:"volume"`
	Price        float64 `json:"price"`
	VariableCost float64 `json:"variable_cost"`
	FixedCost    float64 `json:"fixed_cost"`
}

// ResultPayload is the JSON form of finance.Result. MarginPercent is null when
// the margin is undefined.
type ResultPayload struct {
	Revenue           float64  `json:"revenue"`
	TotalVariableCost float64  `json:"total_variable_cost"`
	TotalCost         float64  `json:"total_cost"`
	Profit            float64  `json:"profit"`
	MarginPercent     *float64 `json:"margin_percent"`
}

// Payload is the JSON document served by the dashboard API.
type Payload struct {
	Input   InputPayload  `json:"input"`
	Result  ResultPayload `json:"result"`
	Metrics []Metric      `json:"metrics"`
	Bar     []chart.Slice `json:"bar"`
	Pie     []chart.Slice `json:"pie"`
	Trend   []chart.Point `json:"trend"`
}

// Payload converts v into its JSON document.
func (v View) Payload() Payload {
	var margin *float64
	if m := v.Result.MarginPercent; !math.IsNaN(m) && !math.IsInf(m, 0) {
		margin = &m
	}

	return Payload{
		Input: InputPayload{
			Volume:       v.Input.Volume,
			Price:        v.Input.Price,
			VariableCost: v.Input.VariableCost,
			FixedCost:    v.Input.FixedCost,
		},
		Result: ResultPayload{
			Revenue:           v.Result.Revenue,
			TotalVariableCost: v.Result.TotalVariableCost,
			TotalCost:         v.Result.TotalCost,
			Profit:            v.Result.Profit,
			MarginPercent:     margin,
		},
		Metrics: v.Metrics,
		Bar:     v.Bar,
		Pie:     v.Pie,
		Trend:   v.Trend,
	}
}
