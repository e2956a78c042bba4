package waveform

import (
	"testing"

	"github.com/san-kum/violationbit/internal/encoding"
)

func TestSegmentAt(t *testing.T) {
	lv := Levels{Min: -5, Max: 5}
	tests := []struct {
		name   string
		i      int
		symbol encoding.Symbol
		volts  []float64
	}{
		{"falling", 0, encoding.Falling, []float64{5, 5, -5, -5}},
		{"rising", 3, encoding.Rising, []float64{-5, -5, 5, 5}},
		{"idle", 7, encoding.Idle, []float64{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := SegmentAt(tt.i, tt.symbol, lv)
			if seg.Index != tt.i || seg.Symbol != tt.symbol {
				t.Errorf("got index %d symbol %v", seg.Index, seg.Symbol)
			}
			x := float64(tt.i)
			wantTimes := []float64{x, x + 0.5, x + 0.5, x + 1}
			times, volts := seg.Times(), seg.Volts()
			for k := 0; k < PointsPerSegment; k++ {
				if times[k] != wantTimes[k] {
					t.Errorf("time[%d] = %v, want %v", k, times[k], wantTimes[k])
				}
				if volts[k] != tt.volts[k] {
					t.Errorf("volt[%d] = %v, want %v", k, volts[k], tt.volts[k])
				}
			}
		})
	}
}

func TestSegmentAt_UnknownSymbolRises(t *testing.T) {
	seg := SegmentAt(0, encoding.Symbol(42), Levels{Min: 1, Max: 3})
	want := []float64{1, 1, 3, 3}
	for k, v := range seg.Volts() {
		if v != want[k] {
			t.Errorf("volt[%d] = %v, want %v", k, v, want[k])
		}
	}
}

func TestGenerator(t *testing.T) {
	symbols, err := encoding.Encode("01 1")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(symbols, Levels{Min: 0, Max: 5})
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}

	var got []encoding.Symbol
	for {
		seg, ok := g.Next()
		if !ok {
			break
		}
		if seg.Index != len(got) {
			t.Errorf("segment index %d, want %d", seg.Index, len(got))
		}
		got = append(got, seg.Symbol)
	}
	if len(got) != 4 || g.Emitted() != 4 {
		t.Fatalf("emitted %d segments", len(got))
	}
	if _, ok := g.Next(); ok {
		t.Error("exhausted generator yielded a segment")
	}

	g.Reset()
	seg, ok := g.Next()
	if !ok || seg.Index != 0 || seg.Symbol != encoding.Rising {
		t.Errorf("after Reset got %+v %v", seg, ok)
	}

	n := 0
	for range g.All() {
		n++
	}
	if n != 4 || g.Emitted() != 1 {
		t.Errorf("All() yielded %d, cursor at %d", n, g.Emitted())
	}
}

func TestGenerator_Empty(t *testing.T) {
	g := NewGenerator(nil, Levels{})
	if _, ok := g.Next(); ok {
		t.Error("empty generator yielded a segment")
	}
}
