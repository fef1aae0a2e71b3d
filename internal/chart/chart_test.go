package chart

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireWellFormed fails the test if svg is not well-formed XML.
func requireWellFormed(t *testing.T, svg string) {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err, "svg: %s", svg)
	}
}

func TestBar_RendersEveryCategoryWithItsColor(t *testing.T) {
	svg := Bar("Revenue vs Cost vs Profit", []Slice{
		{Category: "Revenue", Value: 50000, Color: "#31333F"},
		{Category: "Total Cost", Value: 25000, Color: "#EF553B"},
		{Category: "Profit", Value: 25000, Color: "#00CC96"},
	}, DefaultConfig())

	requireWellFormed(t, svg)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	for _, want := range []string{"Revenue vs Cost vs Profit", "Total Cost", `fill="#31333F"`, `fill="#EF553B"`, `fill="#00CC96"`, "50k"} {
		assert.Contains(t, svg, want)
	}
	assert.Equal(t, 3, strings.Count(svg, "<rect x=")-1, "three bars plus background")
}

func TestBar_NegativeValueIsLabelledWithSign(t *testing.T) {
	svg := Bar("t", []Slice{{Category: "Profit", Value: -3500}}, DefaultConfig())

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "-3.5k")
}

func TestBar_EmptyRendersPlaceholder(t *testing.T) {
	svg := Bar("Empty", nil, Config{})

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "No data available")
}

func TestDonut_PercentagesInLegend(t *testing.T) {
	svg := Donut("Budget Breakdown", []Slice{
		{Category: "Profit", Value: 25000},
		{Category: "Fixed Cost", Value: 5000},
		{Category: "Variable Cost", Value: 20000},
	}, DefaultConfig())

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "Profit (50.0%)")
	assert.Contains(t, svg, "Fixed Cost (10.0%)")
	assert.Contains(t, svg, "Variable Cost (40.0%)")
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
}

func TestDonut_ZeroSliceKeepsLegendEntryButNoArc(t *testing.T) {
	svg := Donut("Budget Breakdown", []Slice{
		{Category: "Profit", Value: 0},
		{Category: "Fixed Cost", Value: 1000},
		{Category: "Variable Cost", Value: 7500},
	}, DefaultConfig())

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "Profit (0.0%)")
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
}

func TestDonut_NothingToBreakDown(t *testing.T) {
	svg := Donut("Budget Breakdown", []Slice{{Category: "Profit", Value: -10}}, DefaultConfig())

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "Nothing to break down")
}

func TestLine_PlotsEveryPoint(t *testing.T) {
	points := []Point{{X: 100, Y: -2000}, {X: 600, Y: 13000}, {X: 1100, Y: 28000}}
	svg := Line("Volume vs Profit Trend", Axes{X: "Volume", Y: "Predicted Profit"}, points, DefaultConfig())

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "<polyline")
	assert.Equal(t, len(points), strings.Count(svg, "<circle"))
	assert.Contains(t, svg, "Predicted Profit")
	assert.Contains(t, svg, `stroke-dasharray="6,4"`, "zero line when range crosses zero")
}

func TestLine_NoZeroLineWhenAllPositive(t *testing.T) {
	svg := Line("t", Axes{}, []Point{{X: 1, Y: 5}, {X: 2, Y: 10}}, DefaultConfig())

	requireWellFormed(t, svg)
	assert.NotContains(t, svg, `stroke-dasharray="6,4"`)
}

func TestTitlesAreEscaped(t *testing.T) {
	svg := Line(`<b>"P&L"</b>`, Axes{}, nil, DefaultConfig())

	requireWellFormed(t, svg)
	assert.Contains(t, svg, "&lt;b&gt;&quot;P&amp;L&quot;&lt;/b&gt;")
}

func TestAxisLabel(t *testing.T) {
	tests := map[float64]string{
		0:        "0",
		12.5:     "12.5",
		-3500:    "-3.5k",
		25000:    "25k",
		1500000:  "1.5M",
		-0.01:    "0",
		283000.0: "283k",
	}
	for in, want := range tests {
		assert.Equal(t, want, axisLabel(in), "axisLabel(%v)", in)
	}
}
