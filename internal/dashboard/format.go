package dashboard

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatVolume renders a unit count with thousands separators, e.g. "1,000 units".
func FormatVolume(volume int) string {
	return humanize.Comma(int64(volume)) + " units"
}

// FormatMoney renders an amount in dollars with two decimals. Negative amounts
// keep their sign in front of the currency symbol: "-$3,500.00".
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	// Grouping goes through big.Int so amounts past the int64 range keep their digits.
	whole, cents, _ := strings.Cut(strconv.FormatFloat(math.Abs(amount), 'f', 2, 64), ".")
	units, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "n/a"
	}
	s := "$" + humanize.BigComma(units) + "." + cents
	if amount < 0 && s != "$0.00" {
		return "-" + s
	}
	return s
}

// FormatMargin renders a margin percentage to one decimal place.
func FormatMargin(percent float64) string {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return "n/a Margin"
	}
	s := fmt.Sprintf("%.1f", percent)
	if s == "-0.0" {
		s = "0.0"
	}
	return s + "% Margin"
}

// toneOf classifies a margin for styling.
func toneOf(percent float64) Tone {
	switch {
	case percent > 0:
		return TonePositive
	case percent < 0:
		return ToneNegative
	default:
		return ToneNeutral
	}
}
