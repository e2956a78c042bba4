package viz

import (
	"strings"
	"testing"
)

func TestDrawTrace(t *testing.T) {
	fig := testFigure(t, "1", 0, 5)
	c := NewCanvas(10, 5)
	pr := newProjection(fig, c)

	if pr.px(0) != 0 || pr.px(0.5) != 10 || pr.px(1) != 19 {
		t.Fatalf("unexpected x projection %d %d %d", pr.px(0), pr.px(0.5), pr.px(1))
	}
	if pr.py(5) != 4 || pr.py(0) != 15 {
		t.Fatalf("unexpected y projection %d %d", pr.py(5), pr.py(0))
	}

	drawTrace(c, pr, fig.Trace())
	on := [][2]int{{0, 10}, {5, 4}, {10, 10}, {15, 15}}
	for _, p := range on {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected pixel %v set", p)
		}
	}
	if c.IsSet(15, 4) {
		t.Error("high level drawn in the low half-slot")
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(1, 3)
	if !c.IsSet(1, 3) || c.Grid[0][0] != brailleBlank+0x80 {
		t.Errorf("Set failed: %U", c.Grid[0][0])
	}
	c.Set(-1, 0)
	c.Set(10, 0)
	c.DrawDottedV(2)
	if !c.IsSet(2, 0) || c.IsSet(2, 1) || !c.IsSet(2, 2) {
		t.Error("dotted line pattern wrong")
	}
	c.Clear()
	if strings.TrimRight(c.String(), "\n") != string([]rune{brailleBlank, brailleBlank}) {
		t.Errorf("Clear failed: %q", c.String())
	}
}

func TestPlotLabels(t *testing.T) {
	fig := testFigure(t, "1", 0, 5)
	v := plotView{fig: fig, trace: fig.Trace(), st: newStyles(ThemeMinimal), w: 10, h: 5}
	pr := newProjection(fig, NewCanvas(v.w, v.h))

	labels := v.yLabels(pr)
	want := map[int]string{0: "V 7.0", 1: "V 5.0", 3: "V 0.0", 4: "V -2.0"}
	for row, label := range want {
		if labels[row] != label {
			t.Errorf("row %d label %q, want %q", row, labels[row], label)
		}
	}
	if x := v.xLabels(pr); !strings.HasPrefix(x, "T 0") || !strings.HasSuffix(x, "T 1") {
		t.Errorf("x labels = %q", x)
	}
	if out := v.render(); !strings.Contains(out, "V 5.0") {
		t.Error("render missing y label")
	}
}
