// Package chart renders the dashboard charts as standalone SVG documents.
package chart

import (
	"fmt"
	"math"
	"strings"
)

// Slice is one labelled value of a categorical chart.
type Slice struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Color    string  `json:"color,omitempty"`
}

// Point is one (x, y) sample of a line chart.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config holds rendering parameters shared by all charts.
type Config struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BgColor      string
	GridColor    string
	TextColor    string
	LineColor    string
	FontSize     int
	// Palette colors slices that carry no color of their own.
	Palette []string
}

// DefaultConfig returns the dashboard's chart defaults.
func DefaultConfig() Config {
	return Config{
		Width:        560,
		Height:       360,
		MarginTop:    44,
		MarginRight:  24,
		MarginBottom: 48,
		MarginLeft:   84,
		BgColor:      "#ffffff",
		GridColor:    "#e6e9ef",
		TextColor:    "#31333f",
		LineColor:    "#636efa",
		FontSize:     11,
		Palette:      []string{"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a"},
	}
}

func (c Config) withDefaults() Config {
	if c.Width == 0 || c.Height == 0 {
		return DefaultConfig()
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultConfig().Palette
	}
	return c
}

// plotArea returns the drawing area inside the margins.
func (c Config) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

func (c Config) color(i int, own string) string {
	if own != "" {
		return own
	}
	return c.Palette[i%len(c.Palette)]
}

func svgOpen(sb *strings.Builder, cfg Config, title string) {
	fmt.Fprintf(sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="100%%" role="img" aria-label="%s">`,
		cfg.Width, cfg.Height, escapeXML(title))
	fmt.Fprintf(sb, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, cfg.Width, cfg.Height, cfg.BgColor)
	fmt.Fprintf(sb, `<text x="%d" y="24" font-size="15" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(title))
}

func emptySVG(cfg Config, title, message string) string {
	var sb strings.Builder
	svgOpen(&sb, cfg, title)
	fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="13" fill="#888888" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.Height/2, escapeXML(message))
	sb.WriteString(`</svg>`)
	return sb.String()
}

// valueRange returns an axis range covering values and zero, padded by 5%.
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = 0, 0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		return lo - 1, hi + 1
	}
	if lo < 0 {
		lo -= span * 0.05
	}
	if hi > 0 {
		hi += span * 0.05
	}
	return lo, hi
}

// axisLabel shortens large numbers for tick labels, e.g. 25000 -> 25k.
func axisLabel(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case abs >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	default:
		return trimZero(fmt.Sprintf("%.1f", v))
	}
}

func trimZero(s string) string {
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		return "0"
	}
	return s
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
