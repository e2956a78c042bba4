package waveform

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/violationbit/internal/encoding"
)

func mustGenerator(t *testing.T, data string, lv Levels) *Generator {
	t.Helper()
	symbols, err := encoding.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	return NewGenerator(symbols, lv)
}

func TestTrace_StartsAtOrigin(t *testing.T) {
	tr := NewTrace()
	if tr.Len() != 1 || tr.Times()[0] != 0 || tr.Volts()[0] != 0 {
		t.Errorf("unexpected initial trace %v %v", tr.Times(), tr.Volts())
	}
	if tr.Segments() != 0 {
		t.Errorf("Segments() = %d", tr.Segments())
	}
}

func TestCollect(t *testing.T) {
	tr := Collect(mustGenerator(t, "10 ", Levels{Min: -1, Max: 1}))
	if tr.Len() != 1+3*PointsPerSegment {
		t.Fatalf("Len() = %d", tr.Len())
	}
	if tr.Segments() != 3 || tr.End() != 3 {
		t.Errorf("Segments() = %d End() = %v", tr.Segments(), tr.End())
	}
	wantVolts := []float64{0, 1, 1, -1, -1, -1, -1, 1, 1, 0, 0, 0, 0}
	for i, v := range tr.Volts() {
		if v != wantVolts[i] {
			t.Errorf("volt[%d] = %v, want %v", i, v, wantVolts[i])
		}
	}
	if pts := tr.Points(); pts[4] != (Point{T: 1, V: -1}) {
		t.Errorf("point[4] = %+v", pts[4])
	}
}

func TestTrace_At(t *testing.T) {
	tr := Collect(mustGenerator(t, "1", Levels{Min: 0, Max: 5}))
	tests := []struct {
		x    float64
		want float64
	}{
		{0.1, 5},
		{0.49, 5},
		{0.5, 0},
		{0.9, 0},
		{3, 0},
	}
	for _, tt := range tests {
		if got := tr.At(tt.x); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	samples := tr.Sample(1, 4)
	want := []float64{5, 5, 0, 0}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, samples[i], want[i])
		}
	}
	if tr.Sample(1, 0) != nil {
		t.Error("expected nil sample for n=0")
	}
}

func TestTrace_SamplePartial(t *testing.T) {
	g := mustGenerator(t, "0000", Levels{Min: 0, Max: 5})
	p := NewPlayer(g, 0)
	if _, ok := p.Step(); !ok {
		t.Fatal("expected a segment")
	}

	samples := p.Trace().Sample(4, 32)
	for i, v := range samples[:8] {
		if math.IsNaN(v) {
			t.Errorf("sample[%d] in the drawn slot is NaN", i)
		}
	}
	for i, v := range samples[8:] {
		if !math.IsNaN(v) {
			t.Errorf("sample[%d] = %v, want NaN for an undrawn slot", i+8, v)
		}
	}
}

func TestPlayer_Pacing(t *testing.T) {
	p := NewPlayer(mustGenerator(t, "01", Levels{Min: 0, Max: 1}), DefaultDelay)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if !p.Advance(start) {
		t.Fatal("first segment should be due immediately")
	}
	if p.Advance(start.Add(100 * time.Millisecond)) {
		t.Error("second segment emitted before delay")
	}
	if p.Shown() != 1 || p.Trace().Segments() != 1 {
		t.Errorf("shown %d", p.Shown())
	}
	if !p.Next().Equal(start.Add(DefaultDelay)) {
		t.Errorf("Next() = %v", p.Next())
	}
	if !p.Advance(start.Add(DefaultDelay)) {
		t.Error("second segment not emitted at deadline")
	}
	if !p.Done() {
		t.Error("player should be done")
	}
	if p.Advance(start.Add(time.Hour)) {
		t.Error("finished player emitted a segment")
	}

	p.Restart()
	if p.Done() || p.Shown() != 0 || p.Trace().Len() != 1 {
		t.Error("Restart did not rewind")
	}
	if _, ok := p.Step(); !ok || p.Trace().Segments() != 1 {
		t.Error("Step did not append")
	}
}

func TestPlayer_Empty(t *testing.T) {
	p := NewPlayer(mustGenerator(t, "", Levels{}), -time.Second)
	if !p.Done() {
		t.Error("empty player should be done")
	}
	if p.Delay() != 0 {
		t.Errorf("negative delay not clamped: %v", p.Delay())
	}
	if p.Advance(time.Now()) {
		t.Error("empty player advanced")
	}
}
