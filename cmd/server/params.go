package main

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/growthboard/internal/finance"
)

// parseDashboardInput reads the four dashboard controls from form values.
// Missing or non-numeric fields keep their default and every value is clamped,
// so the result is always within bounds.
func parseDashboardInput(values url.Values) finance.Input {
	in := finance.DefaultInput()

	if v, ok := parseFiniteFloat(values.Get("volume")); ok {
		v = math.Max(finance.MinVolume, math.Min(finance.MaxVolume, v))
		in.Volume = int(math.Round(v))
	}
	if v, ok := parseFiniteFloat(values.Get("price")); ok {
		in.Price = v
	}
	if v, ok := parseFiniteFloat(values.Get("variable_cost")); ok {
		in.VariableCost = v
	}
	if v, ok := parseFiniteFloat(values.Get("fixed_cost")); ok {
		in.FixedCost = v
	}

	return in.Clamp()
}

// parseFiniteFloat accepts any finite value strconv.ParseFloat does, including
// hex floats such as "0x1p4". The caller clamps the result.
func parseFiniteFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
