// Package plotting builds gonum plots of a waveform figure. The same plot
// backs the native window and the image exports.
package plotting

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

var (
	LineColor       = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	SubtitleColor   = color.RGBA{G: 128, A: 255}
	AnnotationColor = color.Gray{Y: 128}
	GridColor       = color.Gray{Y: 200}

	LineWidth = vg.Points(2)
)

// New builds a plot of fig with tr drawn as a post-step line.
func New(fig visualizer.Figure, tr *waveform.Trace) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title + "\n" + fig.Subtitle
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Voltage"

	p.X.Min, p.X.Max = fig.X.Min, fig.X.Max
	if p.X.Max <= p.X.Min {
		p.X.Max = p.X.Min + 1
	}
	p.Y.Min, p.Y.Max = fig.Y.Min, fig.Y.Max
	p.X.Tick.Marker = SlotTicks{}
	p.Y.Tick.Marker = VoltTicks{Levels: fig.Levels}

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = GridColor
	p.Add(grid)

	line, err := Line(tr)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	if len(fig.Annotations) > 0 {
		labels, err := Annotations(fig)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	return p, nil
}

// Line draws tr as a purple post-step series.
func Line(tr *waveform.Trace) (*plotter.Line, error) {
	line, err := plotter.NewLine(XYs(tr))
	if err != nil {
		return nil, fmt.Errorf("plotting: trace: %w", err)
	}
	line.StepStyle = plotter.PostStep
	line.LineStyle.Color = LineColor
	line.LineStyle.Width = LineWidth
	return line, nil
}

// XYs converts a trace into gonum plot points.
func XYs(tr *waveform.Trace) plotter.XYs {
	times, volts := tr.Times(), tr.Volts()
	xys := make(plotter.XYs, len(times))
	for i := range times {
		xys[i].X = times[i]
		xys[i].Y = volts[i]
	}
	return xys
}

// Annotations places the input character above every slot.
func Annotations(fig visualizer.Figure) (*plotter.Labels, error) {
	data := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(fig.Annotations)),
		Labels: make([]string, len(fig.Annotations)),
	}
	for i, a := range fig.Annotations {
		data.XYs[i] = plotter.XY{X: a.X, Y: a.Y}
		data.Labels[i] = a.Text
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, fmt.Errorf("plotting: annotations: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = AnnotationColor
	}
	return labels, nil
}

// SlotTicks labels every slot boundary as "T n".
type SlotTicks struct{}

func (SlotTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for t := math.Ceil(min); t <= max; t++ {
		ticks = append(ticks, plot.Tick{Value: t, Label: fmt.Sprintf("T %.0f", t)})
	}
	return ticks
}

// VoltTicks labels the line levels and 0V as "V x.x", with unlabeled
// minor ticks on every whole volt.
type VoltTicks struct {
	Levels waveform.Levels
}

func (v VoltTicks) Ticks(min, max float64) []plot.Tick {
	major := map[float64]bool{v.Levels.Min: true, v.Levels.Max: true, 0: true}
	var ticks []plot.Tick
	for y := math.Ceil(min); y <= max; y++ {
		if major[y] {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: y})
	}
	for y := range major {
		if y < min || y > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: y, Label: fmt.Sprintf("V %.1f", y)})
	}
	return ticks
}
