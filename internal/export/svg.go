package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

const (
	svgMargin = 60
	svgTop    = 70
)

// WaveformToSVG draws the step trace, slot grid, per-slot characters and
// titles as a standalone SVG document.
func WaveformToSVG(fig visualizer.Figure, tr *waveform.Trace, width, height int) string {
	plotW := float64(width - 2*svgMargin)
	plotH := float64(height - svgTop - svgMargin)

	rangeX := fig.X.Max - fig.X.Min
	if rangeX <= 0 {
		rangeX = 1
	}
	rangeY := fig.Y.Max - fig.Y.Min
	if rangeY <= 0 {
		rangeY = 1
	}
	sx := func(t float64) float64 { return svgMargin + (t-fig.X.Min)/rangeX*plotW }
	sy := func(v float64) float64 { return svgTop + plotH - (v-fig.Y.Min)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="28" text-anchor="middle" font-size="18" font-weight="bold">%s</text>
<text x="%d" y="52" text-anchor="middle" font-size="13" fill="green">%s</text>
`, width, height, width, height,
		width/2, html.EscapeString(fig.Title),
		width/2, html.EscapeString(fig.Subtitle)))

	sb.WriteString(`<g stroke="#cccccc" stroke-width="1">` + "\n")
	for i := 0; i <= fig.Slots(); i++ {
		x := sx(float64(i))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, sy(fig.Y.Max), x, sy(fig.Y.Min)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g font-size="11" fill="#333333">` + "\n")
	for i := 0; i <= fig.Slots(); i++ {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">T %d</text>`+"\n", sx(float64(i)), sy(fig.Y.Min)+16, i))
	}
	for _, v := range uniqueLevels(fig.Levels) {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">V %.1f</text>`+"\n", sx(fig.X.Min)-6, sy(v)+4, v))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g font-size="25" fill="gray">` + "\n")
	for _, a := range fig.Annotations {
		if a.Text == " " {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>`+"\n", sx(a.X), sy(a.Y), html.EscapeString(a.Text)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<path fill="none" stroke="purple" stroke-width="2" d="M`)
	for i, p := range tr.Points() {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", sx(p.T), sy(p.V)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", sx(p.T), sy(p.V)))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func uniqueLevels(lv waveform.Levels) []float64 {
	out := []float64{lv.Max}
	for _, v := range []float64{0, lv.Min} {
		dup := false
		for _, o := range out {
			if o == v {
				dup = true
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
