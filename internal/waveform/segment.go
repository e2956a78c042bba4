package waveform

import "github.com/san-kum/violationbit/internal/encoding"

// PointsPerSegment is the number of samples a symbol adds to a trace.
const PointsPerSegment = 4

// Levels holds the line voltages for the low and high half-slots.
type Levels struct {
	Min float64
	Max float64
}

// Point is one (time, voltage) sample. Time is measured in symbol slots.
type Point struct {
	T float64
	V float64
}

// Segment is the piece of waveform drawn for a single symbol.
type Segment struct {
	Index  int
	Symbol encoding.Symbol
	Points [PointsPerSegment]Point
}

// SegmentAt builds the segment for symbol s in slot i.
// The transition sits on the half-slot boundary i+0.5.
func SegmentAt(i int, s encoding.Symbol, lv Levels) Segment {
	t := float64(i)
	times := [PointsPerSegment]float64{t, t + 0.5, t + 0.5, t + 1}

	var volts [PointsPerSegment]float64
	switch s {
	case encoding.Idle:
		// line stays at 0V
	case encoding.Falling:
		volts = [PointsPerSegment]float64{lv.Max, lv.Max, lv.Min, lv.Min}
	default:
		volts = [PointsPerSegment]float64{lv.Min, lv.Min, lv.Max, lv.Max}
	}

	seg := Segment{Index: i, Symbol: s}
	for k := range seg.Points {
		seg.Points[k] = Point{T: times[k], V: volts[k]}
	}
	return seg
}

// Times returns the time component of every point.
func (s Segment) Times() []float64 {
	out := make([]float64, PointsPerSegment)
	for i, p := range s.Points {
		out[i] = p.T
	}
	return out
}

// Volts returns the voltage component of every point.
func (s Segment) Volts() []float64 {
	out := make([]float64, PointsPerSegment)
	for i, p := range s.Points {
		out[i] = p.V
	}
	return out
}
