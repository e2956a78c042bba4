package plotting

import (
	"testing"

	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/violationbit/internal/encoding"
	"github.com/san-kum/violationbit/internal/visualizer"
)

func testFigure(t *testing.T, data string) visualizer.Figure {
	t.Helper()
	symbols, err := encoding.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	return visualizer.NewFigure(data, symbols, -5, 5)
}

func TestNew(t *testing.T) {
	fig := testFigure(t, "01 1")
	p, err := New(fig, fig.Trace())
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0 || p.X.Max != 4 || p.Y.Min != -7 || p.Y.Max != 7 {
		t.Errorf("axes x=[%v,%v] y=[%v,%v]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
}

func TestLine(t *testing.T) {
	fig := testFigure(t, "01 1")
	line, err := Line(fig.Trace())
	if err != nil {
		t.Fatal(err)
	}
	if line.StepStyle != plotter.PostStep {
		t.Error("line should be a post step")
	}
	if line.XYs.Len() != 1+4*4 {
		t.Errorf("line has %d points", line.XYs.Len())
	}
}

func TestNew_Empty(t *testing.T) {
	fig := testFigure(t, "")
	p, err := New(fig, fig.Trace())
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Max <= p.X.Min {
		t.Error("empty figure should still have a usable x range")
	}
}

func TestAnnotations(t *testing.T) {
	labels, err := Annotations(testFigure(t, "10"))
	if err != nil {
		t.Fatal(err)
	}
	if len(labels.Labels) != 2 || labels.Labels[0] != "1" || labels.Labels[1] != "0" {
		t.Errorf("labels = %v", labels.Labels)
	}
}

func TestTickers(t *testing.T) {
	slots := SlotTicks{}.Ticks(0, 3)
	if len(slots) != 4 || slots[3].Label != "T 3" {
		t.Errorf("slot ticks = %+v", slots)
	}

	fig := testFigure(t, "1")
	volts := VoltTicks{Levels: fig.Levels}.Ticks(fig.Y.Min, fig.Y.Max)
	labeled := map[string]bool{}
	for _, tk := range volts {
		if tk.Label != "" {
			labeled[tk.Label] = true
		}
	}
	for _, want := range []string{"V -5.0", "V 0.0", "V 5.0"} {
		if !labeled[want] {
			t.Errorf("missing tick %q in %+v", want, volts)
		}
	}
	if len(volts) != 15 {
		t.Errorf("expected one tick per volt from -7 to 7, got %d", len(volts))
	}
}
