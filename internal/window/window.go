// Package window shows the animated waveform in a native window, drawing
// the gonum plot through the gio canvas.
package window

import (
	"context"
	"io"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vggio"

	"github.com/san-kum/violationbit/internal/plotting"
	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultDPI    = 128
)

type Window struct {
	Width, Height int
	DPI           int
	Logger        *log.Logger
}

func New(logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{Width: DefaultWidth, Height: DefaultHeight, DPI: DefaultDPI, Logger: logger}
}

func (w *Window) Name() string { return "window" }

// Animate opens the window and takes over the main goroutine. app.Main does
// not return, so the process exits once the window is destroyed.
func (w *Window) Animate(ctx context.Context, fig visualizer.Figure, p *waveform.Player) error {
	go func() {
		if err := w.loop(ctx, fig, p); err != nil {
			w.Logger.Error("window closed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func (w *Window) loop(ctx context.Context, fig visualizer.Figure, p *waveform.Player) error {
	win := app.NewWindow(
		app.Title(fig.Title),
		app.Size(
			unit.Px(float32(w.Width)),
			unit.Px(float32(w.Height)),
		),
	)
	widget := &plotWidget{fig: fig, player: p, dpi: w.DPI, logger: w.Logger}

	var ops op.Ops
	for {
		select {
		case <-ctx.Done():
			win.Close()
			return nil
		case e := <-win.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				ops.Reset()
				gtx := layout.NewContext(&ops, e)
				if p.Advance(e.Now) {
					w.Logger.Debug("segment", "slot", p.Shown(), "of", p.Total())
				}
				if !p.Done() {
					op.InvalidateOp{At: p.Next()}.Add(gtx.Ops)
				}
				layout.UniformInset(unit.Dp(30)).Layout(gtx, widget.Layout)
				e.Frame(gtx.Ops)

			case key.Event:
				switch keyAction(e) {
				case actionClose:
					win.Close()
				case actionRestart:
					p.Restart()
					win.Invalidate()
				}

			case system.DestroyEvent:
				return e.Err
			}
		}
	}
}

type action int

const (
	actionNone action = iota
	actionClose
	actionRestart
)

// keyAction maps a key press to a window action. Releases are ignored so a
// single keystroke acts once.
func keyAction(e key.Event) action {
	if e.State != key.Press {
		return actionNone
	}
	switch e.Name {
	case "Q", key.NameEscape:
		return actionClose
	case "R":
		return actionRestart
	}
	return actionNone
}

type plotWidget struct {
	fig    visualizer.Figure
	player *waveform.Player
	dpi    int
	logger *log.Logger
}

func (pw *plotWidget) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	pl, err := plotting.New(pw.fig, pw.player.Trace())
	if err != nil {
		pw.logger.Error("plot", "err", err)
		return layout.Dimensions{Size: size}
	}
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(pw.dpi))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(pw.dpi))
	cnv := vggio.New(gtx, wAdjusted, hAdjusted, vggio.UseDPI(pw.dpi))
	pl.Draw(draw.New(cnv))
	return layout.Dimensions{Size: size}
}
