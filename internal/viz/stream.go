package viz

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	streamWidth   = 72
	streamHeight  = 12
	samplesPerBit = 8
)

// Stream redraws an asciigraph plot after every segment. It does not wait
// for input and returns once the last slot is drawn.
type Stream struct {
	Out    io.Writer
	Width  int
	Height int
	// Clear rewrites the screen in place between frames.
	Clear bool
}

func NewStream(out io.Writer) *Stream {
	if out == nil {
		out = os.Stdout
	}
	return &Stream{Out: out, Width: streamWidth, Height: streamHeight, Clear: true}
}

func (s *Stream) Name() string { return "stream" }

func (s *Stream) Animate(ctx context.Context, fig visualizer.Figure, p *waveform.Player) error {
	if s.Clear {
		fmt.Fprint(s.Out, hideCursor)
		defer fmt.Fprint(s.Out, showCursor)
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for !p.Done() {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if _, ok := p.Step(); !ok {
			break
		}
		if err := s.render(fig, p); err != nil {
			return err
		}
		timer.Reset(p.Delay())
	}
	if fig.Slots() == 0 {
		return s.render(fig, p)
	}
	return nil
}

func (s *Stream) render(fig visualizer.Figure, p *waveform.Player) error {
	var b strings.Builder
	if s.Clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fig.Title + "\n")
	b.WriteString(Graph(fig, p.Trace(), s.Width, s.Height))
	b.WriteString(fmt.Sprintf("\nslot %d/%d\n", p.Shown(), p.Total()))
	_, err := io.WriteString(s.Out, b.String())
	return err
}

// Graph renders the trace as an asciigraph plot bounded to the figure's
// voltage axis, followed by the per-slot characters and codes.
func Graph(fig visualizer.Figure, tr *waveform.Trace, width, height int) string {
	graph := asciigraph.Plot(graphSeries(fig, tr),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(fig.Y.Min),
		asciigraph.UpperBound(fig.Y.Max),
		asciigraph.Precision(1),
		asciigraph.Caption(fig.Subtitle),
	)

	var b strings.Builder
	b.WriteString(graph + "\n\n")
	b.WriteString("data:  ")
	for _, r := range fig.Data {
		if r == ' ' {
			r = '_'
		}
		fmt.Fprintf(&b, " %c  ", r)
	}
	b.WriteString("\ncodes: ")
	for _, sym := range fig.Symbols {
		fmt.Fprintf(&b, "%s  ", sym)
	}
	b.WriteString("\n")
	return b.String()
}

// graphSeries samples tr across the whole x axis. Slots not drawn yet are
// NaN, which asciigraph leaves blank.
func graphSeries(fig visualizer.Figure, tr *waveform.Trace) []float64 {
	n := fig.Slots() * samplesPerBit
	if n == 0 {
		n = 1
	}
	return tr.Sample(fig.X.Max, n)
}
