package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Simplici0/growthboard/internal/dashboard"
	"github.com/Simplici0/growthboard/internal/finance"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(16)
	toneStyles   = map[dashboard.Tone]lipgloss.Style{
		dashboard.TonePositive: lipgloss.NewStyle().Foreground(lipgloss.Color("#09AB3B")),
		dashboard.ToneNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF2B2B")),
		dashboard.ToneNeutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#808495")),
	}
)

func newCalcCmd() *cobra.Command {
	var (
		volume       int
		price        float64
		variableCost float64
		fixedCost    float64
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the dashboard once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags go through the same parsing and clamping as the web form.
			values := url.Values{}
			values.Set("volume", strconv.Itoa(volume))
			values.Set("price", strconv.FormatFloat(price, 'f', -1, 64))
			values.Set("variable_cost", strconv.FormatFloat(variableCost, 'f', -1, 64))
			values.Set("fixed_cost", strconv.FormatFloat(fixedCost, 'f', -1, 64))

			view := dashboard.Evaluate(parseDashboardInput(values))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view.Payload())
			}
			return printDashboard(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().IntVar(&volume, "volume", finance.DefaultVolume, "units sold")
	cmd.Flags().Float64Var(&price, "price", finance.DefaultPrice, "price per unit")
	cmd.Flags().Float64Var(&variableCost, "variable-cost", finance.DefaultVariableCost, "variable cost per unit")
	cmd.Flags().Float64Var(&fixedCost, "fixed-cost", finance.DefaultFixedCost, "monthly fixed cost")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API document instead of tables")

	return cmd
}

func printDashboard(out io.Writer, view dashboard.View) error {
	if _, err := fmt.Fprintln(out, headingStyle.Render("Company Growth Predictor")); err != nil {
		return fmt.Errorf("write heading: %w", err)
	}

	for _, m := range view.Metrics {
		line := labelStyle.Render(m.Label) + m.Value
		if m.Delta != "" {
			line += "  " + toneStyles[m.Tone].Render(m.Delta)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write metric: %w", err)
		}
	}

	breakdown := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Amount")
	for _, s := range view.Bar {
		breakdown.Row(s.Category, dashboard.FormatMoney(s.Value))
	}

	budget := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Type", "Value")
	for _, s := range view.Pie {
		budget.Row(s.Category, dashboard.FormatMoney(s.Value))
	}

	trend := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(dashboard.TrendXLabel, dashboard.TrendYLabel)
	for _, p := range view.Trend {
		trend.Row(humanize.Comma(int64(p.X)), dashboard.FormatMoney(p.Y))
	}

	_, err := fmt.Fprintf(out, "\n%s\n%s\n\n%s\n%s\n\n%s\n%s\n",
		headingStyle.Render(dashboard.BarTitle), breakdown.String(),
		headingStyle.Render(dashboard.PieTitle), budget.String(),
		headingStyle.Render(dashboard.TrendTitle), trend.String())
	if err != nil {
		return fmt.Errorf("write tables: %w", err)
	}
	return nil
}
