package chart

import (
	"fmt"
	"strings"
)

const gridLines = 5

// Bar renders a vertical bar chart. Bars grow up or down from a zero baseline,
// so negative values stay visible.
func Bar(title string, slices []Slice, cfg Config) string {
	cfg = cfg.withDefaults()
	if len(slices) == 0 {
		return emptySVG(cfg, title, "No data available")
	}

	values := make([]float64, len(slices))
	for i, s := range slices {
		values[i] = s.Value
	}
	lo, hi := valueRange(values)

	px, py, pw, ph := cfg.plotArea()
	toY := func(v float64) float64 {
		return float64(py) + float64(ph)*(hi-v)/(hi-lo)
	}

	var sb strings.Builder
	svgOpen(&sb, cfg, title)

	for i := 0; i <= gridLines; i++ {
		v := lo + (hi-lo)*float64(i)/gridLines
		y := toY(v)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor)
		fmt.Fprintf(&sb, `<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%s</text>`,
			px-6, y+4, cfg.FontSize, cfg.TextColor, axisLabel(v))
	}

	slot := float64(pw) / float64(len(slices))
	barWidth := slot * 0.6
	zeroY := toY(0)

	for i, s := range slices {
		x := float64(px) + slot*float64(i) + (slot-barWidth)/2
		top, bottom := toY(s.Value), zeroY
		if top > bottom {
			top, bottom = bottom, top
		}
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s: %s</title></rect>`,
			x, top, barWidth, bottom-top, cfg.color(i, s.Color), escapeXML(s.Category), axisLabel(s.Value))

		labelY := top - 6
		if s.Value < 0 {
			labelY = bottom + 14
		}
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			x+barWidth/2, labelY, cfg.FontSize, cfg.TextColor, axisLabel(s.Value))
		fmt.Fprintf(&sb, `<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			x+barWidth/2, py+ph+20, cfg.FontSize+1, cfg.TextColor, escapeXML(s.Category))
	}

	fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1"/>`,
		px, zeroY, px+pw, zeroY, cfg.TextColor)
	sb.WriteString(`</svg>`)
	return sb.String()
}
