package chart

import (
	"fmt"
	"math"
	"strings"
)

// HoleRatio is the inner radius of the donut relative to the outer radius.
const HoleRatio = 0.4

// Donut renders a proportional breakdown as a donut chart with a legend.
// Negative values count as zero.
func Donut(title string, slices []Slice, cfg Config) string {
	cfg = cfg.withDefaults()

	total := 0.0
	for _, s := range slices {
		total += math.Max(0, s.Value)
	}
	if total <= 0 {
		return emptySVG(cfg, title, "Nothing to break down")
	}

	_, py, _, ph := cfg.plotArea()
	outer := float64(ph) / 2
	inner := outer * HoleRatio
	radius := (outer + inner) / 2
	circumference := 2 * math.Pi * radius
	cx := float64(cfg.Width) * 0.35
	cy := float64(py) + float64(ph)/2

	var sb strings.Builder
	svgOpen(&sb, cfg, title)

	// Each slice is a stroked circle whose dash covers its share of the ring.
	fmt.Fprintf(&sb, `<g transform="rotate(-90 %.1f %.1f)">`, cx, cy)
	offset := 0.0
	for i, s := range slices {
		share := math.Max(0, s.Value) / total
		if share == 0 {
			continue
		}
		dash := share * circumference
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f"><title>%s: %.1f%%</title></circle>`,
			cx, cy, radius, cfg.color(i, s.Color), outer-inner, dash, circumference-dash, -offset,
			escapeXML(s.Category), share*100)
		offset += dash
	}
	sb.WriteString(`</g>`)

	legendX := int(cx+outer) + 32
	for i, s := range slices {
		share := math.Max(0, s.Value) / total
		y := int(cy) - len(slices)*12 + i*24
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="12" height="12" fill="%s"/>`, legendX, y, cfg.color(i, s.Color))
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="%d" fill="%s">%s (%.1f%%)</text>`,
			legendX+18, y+10, cfg.FontSize+1, cfg.TextColor, escapeXML(s.Category), share*100)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}
