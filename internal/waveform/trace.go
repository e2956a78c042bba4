package waveform

import "math"

// Trace is the accumulated step series drawn so far.
// It always starts with the origin sample (0, 0).
type Trace struct {
	times []float64
	volts []float64
}

func NewTrace() *Trace {
	return &Trace{
		times: []float64{0},
		volts: []float64{0},
	}
}

// Collect appends every segment of the generator to a fresh trace.
func Collect(g *Generator) *Trace {
	tr := NewTrace()
	for seg := range g.All() {
		tr.Append(seg)
	}
	return tr
}

func (t *Trace) Append(seg Segment) {
	for _, p := range seg.Points {
		t.times = append(t.times, p.T)
		t.volts = append(t.volts, p.V)
	}
}

func (t *Trace) Len() int         { return len(t.times) }
func (t *Trace) Times() []float64 { return t.times }
func (t *Trace) Volts() []float64 { return t.volts }
func (t *Trace) Segments() int    { return (len(t.times) - 1) / PointsPerSegment }
func (t *Trace) End() float64     { return t.times[len(t.times)-1] }

func (t *Trace) Points() []Point {
	out := make([]Point, len(t.times))
	for i := range t.times {
		out[i] = Point{T: t.times[i], V: t.volts[i]}
	}
	return out
}

// At returns the voltage held at time x, treating the series as a
// post-step function. Times past the last sample hold the last value.
func (t *Trace) At(x float64) float64 {
	v := t.volts[0]
	for i, tt := range t.times {
		if tt > x {
			break
		}
		v = t.volts[i]
	}
	return v
}

// Sample evaluates the step series at n evenly spaced points over [0, end).
// Points past the last drawn sample are NaN so unrevealed slots stay blank.
func (t *Trace) Sample(end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := end / float64(n)
	last := t.End()
	for i := range out {
		x := float64(i)*step + step/2
		if x > last {
			out[i] = math.NaN()
			continue
		}
		out[i] = t.At(x)
	}
	return out
}
