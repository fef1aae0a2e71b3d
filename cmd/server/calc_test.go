package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/growthboard/internal/dashboard"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestCalc_PrintsMetricsAndTrend(t *testing.T) {
	out := runRoot(t, "calc")

	for _, want := range []string{
		"Company Growth Predictor",
		"Total Volume",
		"1,000 units",
		"$50,000.00",
		"$25,000.00",
		"50.0% Margin",
		dashboard.BarTitle,
		"Total Cost",
		dashboard.TrendTitle,
		"9,600",
		"$283,000.00",
		"-$2,000.00",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCalc_LossScenario(t *testing.T) {
	out := runRoot(t, "calc", "--volume", "500", "--price", "10", "--variable-cost", "15", "--fixed-cost", "1000")

	assert.Contains(t, out, "-$3,500.00")
	assert.Contains(t, out, "-70.0% Margin")

	// Only the budget breakdown lists variable cost, with the loss floored.
	assert.Contains(t, out, dashboard.PieTitle)
	assert.Contains(t, out, "Variable Cost")
	assert.Contains(t, out, "$7,500.00")
	assert.Regexp(t, `Profit\s*│\s*\$0\.00`, out)
}

func TestCalc_JSONClampsFlags(t *testing.T) {
	out := runRoot(t, "calc", "--json", "--volume", "50", "--price", "0", "--variable-cost", "0", "--fixed-cost", "0")

	var payload dashboard.Payload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.Equal(t, 100, payload.Input.Volume)
	assert.Equal(t, 1.0, payload.Input.Price)
	assert.Equal(t, 1.0, payload.Input.VariableCost)
	assert.Equal(t, 100.0, payload.Result.Revenue)
	assert.Equal(t, 0.0, payload.Result.Profit)
	require.NotNil(t, payload.Result.MarginPercent)
	assert.Equal(t, 0.0, *payload.Result.MarginPercent)
}
