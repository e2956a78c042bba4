package waveform

import (
	"iter"

	"github.com/san-kum/violationbit/internal/encoding"
)

// Generator lazily yields one Segment per encoded symbol, left to right.
// It is finite; Reset starts it over from slot 0.
type Generator struct {
	symbols []encoding.Symbol
	levels  Levels
	pos     int
}

func NewGenerator(symbols []encoding.Symbol, lv Levels) *Generator {
	return &Generator{symbols: symbols, levels: lv}
}

// Next returns the next segment, or false once every symbol was emitted.
func (g *Generator) Next() (Segment, bool) {
	if g.pos >= len(g.symbols) {
		return Segment{}, false
	}
	seg := SegmentAt(g.pos, g.symbols[g.pos], g.levels)
	g.pos++
	return seg, true
}

func (g *Generator) Len() int       { return len(g.symbols) }
func (g *Generator) Emitted() int   { return g.pos }
func (g *Generator) Levels() Levels { return g.levels }
func (g *Generator) Reset()         { g.pos = 0 }

// All iterates over every segment without touching the generator's cursor.
func (g *Generator) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i, s := range g.symbols {
			if !yield(SegmentAt(i, s, g.levels)) {
				return
			}
		}
	}
}
