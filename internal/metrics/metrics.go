package metrics

import (
	"iter"

	"github.com/san-kum/violationbit/internal/encoding"
	"github.com/san-kum/violationbit/internal/waveform"
)

// Metric accumulates a single statistic over the segments of a waveform.
type Metric interface {
	Name() string
	Observe(seg waveform.Segment)
	Value() float64
	Reset()
}

// Default returns fresh instances of every line statistic.
func Default() []Metric {
	return []Metric{NewTransitions(), NewViolations(), NewDCBalance()}
}

// Collect feeds every segment of seq to ms and returns their values by name.
func Collect(seq iter.Seq[waveform.Segment], ms ...Metric) map[string]float64 {
	for seg := range seq {
		for _, m := range ms {
			m.Observe(seg)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Transitions counts voltage changes on the line, starting from 0V.
type Transitions struct {
	name  string
	last  float64
	count int
}

func NewTransitions() *Transitions {
	return &Transitions{name: "transitions"}
}

func (m *Transitions) Name() string { return m.name }

func (m *Transitions) Observe(seg waveform.Segment) {
	for _, p := range seg.Points {
		if p.V != m.last {
			m.count++
		}
		m.last = p.V
	}
}

func (m *Transitions) Value() float64 { return float64(m.count) }

func (m *Transitions) Reset() {
	m.last = 0
	m.count = 0
}

// Violations counts idle slots, the deliberate breaks in the Manchester code.
type Violations struct {
	name  string
	count int
}

func NewViolations() *Violations {
	return &Violations{name: "violations"}
}

func (m *Violations) Name() string { return m.name }

func (m *Violations) Observe(seg waveform.Segment) {
	if seg.Symbol == encoding.Idle {
		m.count++
	}
}

func (m *Violations) Value() float64 { return float64(m.count) }
func (m *Violations) Reset()         { m.count = 0 }

// DCBalance is the mean line voltage over all observed slots.
type DCBalance struct {
	name    string
	total   float64
	samples int
}

func NewDCBalance() *DCBalance {
	return &DCBalance{name: "dc_balance"}
}

func (m *DCBalance) Name() string { return m.name }

func (m *DCBalance) Observe(seg waveform.Segment) {
	// each half-slot holds its voltage for 0.5
	m.total += 0.5*seg.Points[1].V + 0.5*seg.Points[3].V
	m.samples++
}

func (m *DCBalance) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *DCBalance) Reset() {
	m.total = 0
	m.samples = 0
}
