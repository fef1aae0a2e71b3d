// Package dashboard turns a financial result and projection into the metrics
// and chart tables shown on the page.
package dashboard

import (
	"math"

	"github.com/Simplici0/growthboard/internal/chart"
	"github.com/Simplici0/growthboard/internal/finance"
)

// Chart titles and labels.
const (
	BarTitle   = "Revenue vs Cost vs Profit"
	PieTitle   = "Budget Breakdown"
	TrendTitle = "Volume vs Profit Trend"

	TrendXLabel = "Volume"
	TrendYLabel = "Predicted Profit"
)

// Bar chart colors per category.
const (
	RevenueColor   = "#31333F"
	TotalCostColor = "#EF553B"
	ProfitColor    = "#00CC96"
)

// Tone is the styling hint attached to a metric delta.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Metric is one scalar display.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
	Tone  Tone   `json:"tone,omitempty"`
}

// View holds everything one render of the dashboard needs.
type View struct {
	Input   finance.Input
	Result  finance.Result
	Metrics []Metric
	Bar     []chart.Slice
	Pie     []chart.Slice
	Trend   []chart.Point
}

// Charts holds the rendered SVG documents of a View.
type Charts struct {
	Bar   string
	Pie   string
	Trend string
}

// Evaluate runs the full pipeline for one input change: clamp, compute,
// project and build.
func Evaluate(in finance.Input) View {
	in = in.Clamp()
	return Build(in, finance.Compute(in), finance.Project(in.Price, in.VariableCost, in.FixedCost))
}

// Build assembles the metrics and chart tables for a computed result.
func Build(in finance.Input, res finance.Result, proj finance.Projection) View {
	metrics := []Metric{
		{Label: "Total Volume", Value: FormatVolume(in.Volume)},
		{Label: "Total Revenue", Value: FormatMoney(res.Revenue)},
		{
			Label: "Net Profit",
			Value: FormatMoney(res.Profit),
			Delta: FormatMargin(res.MarginPercent),
			Tone:  toneOf(res.MarginPercent),
		},
	}

	bar := []chart.Slice{
		{Category: "Revenue", Value: res.Revenue, Color: RevenueColor},
		{Category: "Total Cost", Value: res.TotalCost, Color: TotalCostColor},
		{Category: "Profit", Value: res.Profit, Color: ProfitColor},
	}

	// Losses are floored here only; the bar chart and metrics keep the sign.
	pie := []chart.Slice{
		{Category: "Profit", Value: math.Max(0, res.Profit)},
		{Category: "Fixed Cost", Value: in.FixedCost},
		{Category: "Variable Cost", Value: res.TotalVariableCost},
	}

	trend := make([]chart.Point, len(proj))
	for i, p := range proj {
		trend[i] = chart.Point{X: float64(p.Volume), Y: p.Profit}
	}

	return View{
		Input:   in,
		Result:  res,
		Metrics: metrics,
		Bar:     bar,
		Pie:     pie,
		Trend:   trend,
	}
}

// Render draws the three charts of v.
func (v View) Render(cfg chart.Config) Charts {
	return Charts{
		Bar:   chart.Bar(BarTitle, v.Bar, cfg),
		Pie:   chart.Donut(PieTitle, v.Pie, cfg),
		Trend: chart.Line(TrendTitle, chart.Axes{X: TrendXLabel, Y: TrendYLabel}, v.Trend, cfg),
	}
}
