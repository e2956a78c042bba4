package waveform

import "time"

// DefaultDelay is the pause between two revealed segments.
const DefaultDelay = 500 * time.Millisecond

// Player paces a Generator in wall-clock time, growing a Trace one
// segment per delay. Backends call Advance from their own event loop.
type Player struct {
	gen   *Generator
	trace *Trace
	delay time.Duration
	next  time.Time
}

func NewPlayer(gen *Generator, delay time.Duration) *Player {
	if delay < 0 {
		delay = 0
	}
	return &Player{gen: gen, trace: NewTrace(), delay: delay}
}

// Advance appends at most one segment if its deadline has passed.
// The first segment is due immediately.
func (p *Player) Advance(now time.Time) bool {
	if p.Done() {
		return false
	}
	if !p.next.IsZero() && now.Before(p.next) {
		return false
	}
	seg, ok := p.gen.Next()
	if !ok {
		return false
	}
	p.trace.Append(seg)
	p.next = now.Add(p.delay)
	return true
}

// Step appends the next segment regardless of the clock.
func (p *Player) Step() (Segment, bool) {
	seg, ok := p.gen.Next()
	if ok {
		p.trace.Append(seg)
	}
	return seg, ok
}

// Next returns when the following segment becomes due.
func (p *Player) Next() time.Time { return p.next }

func (p *Player) Done() bool           { return p.gen.Emitted() >= p.gen.Len() }
func (p *Player) Delay() time.Duration { return p.delay }
func (p *Player) Trace() *Trace        { return p.trace }
func (p *Player) Total() int           { return p.gen.Len() }
func (p *Player) Shown() int           { return p.gen.Emitted() }

// Restart rewinds the generator and drops the drawn trace.
func (p *Player) Restart() {
	p.gen.Reset()
	p.trace = NewTrace()
	p.next = time.Time{}
}
