package visualizer

import (
	"fmt"

	"github.com/san-kum/violationbit/internal/encoding"
	"github.com/san-kum/violationbit/internal/waveform"
)

const (
	// Title is shown above every figure.
	Title = "Violation Bit - BiPhase-L"

	// VoltageMargin pads the y axis above and below the line levels.
	VoltageMargin = 2

	annotationDX = 0.35
	annotationDY = 0.3
)

// Annotation places literal text at plot coordinates.
type Annotation struct {
	X, Y float64
	Text string
}

// Axis is a closed plot range.
type Axis struct {
	Min, Max float64
}

// Figure is everything a backend needs to draw, independent of how it draws.
type Figure struct {
	Title       string
	Subtitle    string
	Data        string
	Symbols     []encoding.Symbol
	Levels      waveform.Levels
	X, Y        Axis
	Annotations []Annotation
}

// NewFigure lays out the plot for an already encoded signal.
func NewFigure(data string, symbols []encoding.Symbol, minV, maxV int) Figure {
	fig := Figure{
		Title:    Title,
		Subtitle: Subtitle(data, minV, maxV),
		Data:     data,
		Symbols:  symbols,
		Levels:   waveform.Levels{Min: float64(minV), Max: float64(maxV)},
		X:        Axis{Min: 0, Max: float64(len(symbols))},
		Y:        Axis{Min: float64(minV - VoltageMargin), Max: float64(maxV + VoltageMargin)},
	}

	chars := []rune(data)
	fig.Annotations = make([]Annotation, 0, len(symbols))
	for i := range symbols {
		fig.Annotations = append(fig.Annotations, Annotation{
			X:    float64(i) + annotationDX,
			Y:    float64(maxV) + annotationDY,
			Text: string(chars[i]),
		})
	}
	return fig
}

// Subtitle formats the raw signal, the voltage bounds and the frame count.
func Subtitle(data string, minV, maxV int) string {
	return fmt.Sprintf("%s    Min V: %d    Max V: %d    Frame: %d", data, minV, maxV, encoding.Frames(data))
}

func (f Figure) Frames() int { return encoding.Frames(f.Data) }
func (f Figure) Slots() int  { return len(f.Symbols) }

// Generator returns a fresh segment generator over the figure's symbols.
func (f Figure) Generator() *waveform.Generator {
	return waveform.NewGenerator(f.Symbols, f.Levels)
}

// Trace returns the complete waveform without animation.
func (f Figure) Trace() *waveform.Trace {
	return waveform.Collect(f.Generator())
}
