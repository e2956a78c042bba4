package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

const labelWidth = 8

// projection maps figure coordinates onto canvas sub-pixels.
type projection struct {
	x, y   visualizer.Axis
	pw, ph int
}

func newProjection(fig visualizer.Figure, c *Canvas) projection {
	return projection{x: fig.X, y: fig.Y, pw: c.PixelWidth(), ph: c.PixelHeight()}
}

func span(a visualizer.Axis) float64 {
	if s := a.Max - a.Min; s > 0 {
		return s
	}
	return 1
}

func (p projection) px(t float64) int {
	return int(math.Round((t - p.x.Min) / span(p.x) * float64(p.pw-1)))
}

func (p projection) py(v float64) int {
	return (p.ph - 1) - int(math.Round((v-p.y.Min)/span(p.y)*float64(p.ph-1)))
}

// drawTrace draws the post-step series: consecutive samples are joined, and
// samples sharing a time produce the vertical transition.
func drawTrace(c *Canvas, pr projection, tr *waveform.Trace) {
	times, volts := tr.Times(), tr.Volts()
	for i := 1; i < len(times); i++ {
		c.DrawLine(pr.px(times[i-1]), pr.py(volts[i-1]), pr.px(times[i]), pr.py(volts[i]))
	}
}

func drawGrid(c *Canvas, pr projection, slots int) {
	for i := 0; i <= slots; i++ {
		c.DrawDottedV(pr.px(float64(i)))
	}
}

type cellKey struct{ row, col int }

// plotView renders the figure with the trace drawn so far.
type plotView struct {
	fig   visualizer.Figure
	trace *waveform.Trace
	st    styles
	w, h  int
}

func (v plotView) render() string {
	line := NewCanvas(v.w, v.h)
	grid := NewCanvas(v.w, v.h)
	pr := newProjection(v.fig, line)
	drawGrid(grid, pr, v.fig.Slots())
	drawTrace(line, pr, v.trace)

	notes := make(map[cellKey]string, len(v.fig.Annotations))
	for _, a := range v.fig.Annotations {
		notes[cellKey{pr.py(a.Y) / 4, pr.px(a.X) / 2}] = a.Text
	}
	ylabels := v.yLabels(pr)

	var b strings.Builder
	for row := 0; row < v.h; row++ {
		b.WriteString(v.st.axis.Render(fmt.Sprintf("%*s", labelWidth, ylabels[row])))
		b.WriteString(v.st.axis.Render("┤"))
		for col := 0; col < v.w; col++ {
			if text, ok := notes[cellKey{row, col}]; ok && text != " " {
				b.WriteString(v.st.note.Render(text))
				continue
			}
			r := line.Grid[row][col]
			switch {
			case r != brailleBlank:
				b.WriteString(v.st.line.Render(string(r | grid.Grid[row][col])))
			case grid.Grid[row][col] != brailleBlank:
				b.WriteString(v.st.grid.Render(string(grid.Grid[row][col])))
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", labelWidth) + v.st.axis.Render("└"+strings.Repeat("─", v.w)) + "\n")
	b.WriteString(strings.Repeat(" ", labelWidth+1) + v.st.axis.Render(v.xLabels(pr)))
	return b.String()
}

// yLabels marks the rows holding the axis ends, both line levels and 0V.
func (v plotView) yLabels(pr projection) []string {
	labels := make([]string, v.h)
	values := []float64{v.fig.Y.Max, v.fig.Levels.Max, 0, v.fig.Levels.Min, v.fig.Y.Min}
	for _, val := range values {
		row := pr.py(val) / 4
		if row < 0 || row >= v.h || labels[row] != "" {
			continue
		}
		labels[row] = fmt.Sprintf("V %.1f", val)
	}
	return labels
}

func (v plotView) xLabels(pr projection) string {
	out := []rune(strings.Repeat(" ", v.w+labelWidth))
	next := 0
	for i := 0; i <= v.fig.Slots(); i++ {
		col := pr.px(float64(i)) / 2
		label := []rune(fmt.Sprintf("T %d", i))
		if col < next || col+len(label) > len(out) {
			continue
		}
		copy(out[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(out), " ")
}
