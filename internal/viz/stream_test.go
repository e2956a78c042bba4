package viz

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/violationbit/internal/waveform"
)

func TestStream_Animate(t *testing.T) {
	fig := testFigure(t, "10", -1, 1)
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.Clear = false

	p := waveform.NewPlayer(fig.Generator(), 0)
	if err := s.Animate(context.Background(), fig, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, fig.Title) != 2 {
		t.Errorf("expected one frame per slot, got %d", strings.Count(out, fig.Title))
	}
	for _, want := range []string{"slot 1/2", "slot 2/2", "codes: 10  01", fig.Subtitle} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, clearScreen) {
		t.Error("Clear=false must not emit escape codes")
	}
}

func TestStream_Canceled(t *testing.T) {
	fig := testFigure(t, "1111", 0, 5)
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := waveform.NewPlayer(fig.Generator(), waveform.DefaultDelay)
	if err := NewStream(&buf).Animate(ctx, fig, p); err != nil {
		t.Fatal(err)
	}
	if p.Done() {
		t.Error("canceled stream should stop early")
	}
}

func TestGraph_Empty(t *testing.T) {
	fig := testFigure(t, "", 0, 5)
	out := Graph(fig, fig.Trace(), 20, 4)
	if !strings.Contains(out, "Frame: 0") {
		t.Errorf("graph missing caption: %q", out)
	}
}

func TestGraph_RevealsLeftToRight(t *testing.T) {
	fig := testFigure(t, "0000", 0, 5)
	p := waveform.NewPlayer(fig.Generator(), 0)
	if _, ok := p.Step(); !ok {
		t.Fatal("expected a segment")
	}

	series := graphSeries(fig, p.Trace())
	if len(series) != 4*samplesPerBit {
		t.Fatalf("got %d samples", len(series))
	}
	for i, v := range series[:samplesPerBit] {
		if math.IsNaN(v) {
			t.Errorf("sample[%d] of the drawn slot is blank", i)
		}
	}
	for i, v := range series[samplesPerBit:] {
		if !math.IsNaN(v) {
			t.Errorf("sample[%d] = %v, undrawn slots must stay blank", i+samplesPerBit, v)
		}
	}

	if out := Graph(fig, p.Trace(), 40, 6); !strings.Contains(out, "codes:") {
		t.Errorf("graph missing codes line: %q", out)
	}
}
