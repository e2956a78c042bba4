package visualizer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/san-kum/violationbit/internal/config"
	"github.com/san-kum/violationbit/internal/encoding"
	"github.com/san-kum/violationbit/internal/waveform"
)

// Backend renders a figure while pacing the player. Interactive backends
// return only once the user closes the display.
type Backend interface {
	Name() string
	Animate(ctx context.Context, fig Figure, p *waveform.Player) error
}

type Option func(*Visualizer)

func WithLogger(l *log.Logger) Option {
	return func(v *Visualizer) { v.logger = l }
}

type Visualizer struct {
	cfg    config.Config
	logger *log.Logger
}

func New(cfg config.Config, opts ...Option) *Visualizer {
	v := &Visualizer{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Visualizer) Config() config.Config { return v.cfg }

// Figure encodes the configured data and lays out the plot. The encoding
// is recomputed on every call.
func (v *Visualizer) Figure() (Figure, error) {
	symbols, err := encoding.Encode(v.cfg.Data)
	if err != nil {
		return Figure{}, err
	}
	v.logger.Debug("encoded signal", "data", v.cfg.Data, "codes", strings.Join(encoding.Codes(symbols), " "))
	return NewFigure(v.cfg.Data, symbols, v.cfg.MinVoltage, v.cfg.MaxVoltage), nil
}

// Show encodes the signal and runs the animation on b. Encoding errors are
// returned before the backend is touched.
func (v *Visualizer) Show(ctx context.Context, b Backend) error {
	fig, err := v.Figure()
	if err != nil {
		return err
	}
	p := waveform.NewPlayer(fig.Generator(), v.cfg.Delay)

	v.logger.Info("animating", "backend", b.Name(), "slots", fig.Slots(), "frames", fig.Frames(), "delay", v.cfg.Delay)
	if err := b.Animate(ctx, fig, p); err != nil {
		return fmt.Errorf("%s backend: %w", b.Name(), err)
	}
	v.logger.Debug("display closed", "backend", b.Name(), "shown", p.Shown())
	return nil
}
