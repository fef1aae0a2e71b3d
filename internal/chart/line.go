package chart

import (
	"fmt"
	"math"
	"strings"
)

// Axes names the x and y axes of a line chart.
type Axes struct {
	X string
	Y string
}

// Line renders points as a single polyline series. When the y range crosses
// zero a dashed zero line is drawn.
func Line(title string, axes Axes, points []Point, cfg Config) string {
	cfg = cfg.withDefaults()
	if len(points) == 0 {
		return emptySVG(cfg, title, "No data available")
	}

	minX, maxX := points[0].X, points[0].X
	ys := make([]float64, len(points))
	for i, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		ys[i] = p.Y
	}
	if maxX == minX {
		minX, maxX = minX-1, maxX+1
	}
	lo, hi := valueRange(ys)

	px, py, pw, ph := cfg.plotArea()
	toX := func(x float64) float64 {
		return float64(px) + float64(pw)*(x-minX)/(maxX-minX)
	}
	toY := func(y float64) float64 {
		return float64(py) + float64(ph)*(hi-y)/(hi-lo)
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

		xv := minX + (maxX-minX)*float64(i)/gridLines
		fmt.Fprintf(&sb, `<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			toX(xv), py+ph+18, cfg.FontSize, cfg.TextColor, axisLabel(xv))
	}

	if lo < 0 && hi > 0 {
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-dasharray="6,4"/>`,
			px, toY(0), px+pw, toY(0), cfg.TextColor)
	}

	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%.1f,%.1f", toX(p.X), toY(p.Y))
	}
	fmt.Fprintf(&sb, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
		strings.Join(coords, " "), cfg.LineColor)
	for _, p := range points {
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"><title>%s: %s, %s: %s</title></circle>`,
			toX(p.X), toY(p.Y), cfg.LineColor,
			escapeXML(axes.X), axisLabel(p.X), escapeXML(axes.Y), axisLabel(p.Y))
	}

	if axes.X != "" {
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			px+pw/2, cfg.Height-8, cfg.FontSize+1, cfg.TextColor, escapeXML(axes.X))
	}
	if axes.Y != "" {
		fmt.Fprintf(&sb, `<text x="16" y="%d" font-size="%d" fill="%s" text-anchor="middle" transform="rotate(-90 16 %d)">%s</text>`,
			py+ph/2, cfg.FontSize+1, cfg.TextColor, py+ph/2, escapeXML(axes.Y))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}
