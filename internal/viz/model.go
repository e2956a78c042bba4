package viz

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

const (
	canvasWidth  = 64
	canvasHeight = 14
	minWidth     = 20
	maxWidth     = 160
	minHeight    = 6
	maxHeight    = 40
	progressBar  = 24
)

// TickMsg asks the model to reveal the next segment. Gen identifies the
// tick chain; ticks from a chain replaced by pause or replay are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// Model reveals the waveform one segment per tick and stays on screen
// after the last slot until the user quits.
type Model struct {
	fig      visualizer.Figure
	player   *waveform.Player
	theme    Theme
	st       styles
	width    int
	height   int
	paused   bool
	frame    int
	gen      int
	quitting bool
}

func NewModel(fig visualizer.Figure, p *waveform.Player, theme Theme) Model {
	return Model{
		fig:    fig,
		player: p,
		theme:  theme,
		st:     newStyles(theme),
		width:  canvasWidth,
		height: canvasHeight,
	}
}

func (m Model) Init() tea.Cmd {
	gen := m.gen
	return func() tea.Msg { return TickMsg{Time: time.Now(), Gen: gen} }
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.player.Delay(), func(t time.Time) tea.Msg { return TickMsg{Time: t, Gen: gen} })
}

// Update handles input events and reveals segments.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			m.gen++
			if !m.paused && !m.player.Done() {
				return m, m.tick()
			}
		case "r":
			m.player.Restart()
			m.paused = false
			m.gen++
			return m, m.Init()
		case "t":
			m.theme = NextTheme(m.theme)
			m.st = newStyles(m.theme)
		}
	case tea.WindowSizeMsg:
		m.width = clamp(msg.Width-labelWidth-6, minWidth, maxWidth)
		m.height = clamp(msg.Height-10, minHeight, maxHeight)
	case TickMsg:
		if msg.Gen != m.gen || m.paused || m.player.Done() {
			return m, nil
		}
		if m.player.Advance(msg.Time) {
			m.frame++
		}
		if m.player.Done() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the TUI interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var s strings.Builder
	s.WriteString(m.st.title.Render(m.fig.Title) + "\n")
	s.WriteString(m.st.subtitle.Render(m.fig.Subtitle) + "\n\n")

	pv := plotView{fig: m.fig, trace: m.player.Trace(), st: m.st, w: m.width, h: m.height}
	s.WriteString(pv.render() + "\n\n")
	s.WriteString(m.status() + "\n")
	s.WriteString(m.st.help.Render("SP:Pause R:Replay T:Theme(" + m.theme.Name + ") Q:Quit"))
	return m.st.frame.Render(s.String())
}

func (m Model) status() string {
	total, shown := m.player.Total(), m.player.Shown()
	pct := 1.0
	if total > 0 {
		pct = float64(shown) / float64(total)
	}
	progress := fmt.Sprintf("%s %d/%d", ProgressBar(pct, progressBar), shown, total)
	switch {
	case m.player.Done():
		return m.st.status.Render("DONE") + "  " + progress
	case m.paused:
		return m.st.paused.Render("PAUSED") + "  " + progress
	default:
		return m.st.status.Render("ANIMATING "+AnimatedSpinner(m.frame)) + "  " + progress
	}
}

func (m Model) Done() bool   { return m.player.Done() }
func (m Model) Paused() bool { return m.paused }
func (m Model) Theme() Theme { return m.theme }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TUI is the interactive terminal backend.
type TUI struct {
	Theme   string
	Input   io.Reader
	Output  io.Writer
	Options []tea.ProgramOption
}

func (b *TUI) Name() string { return "tui" }

func (b *TUI) Animate(ctx context.Context, fig visualizer.Figure, p *waveform.Player) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if b.Input != nil {
		opts = append(opts, tea.WithInput(b.Input))
	}
	if b.Output != nil {
		opts = append(opts, tea.WithOutput(b.Output))
	}
	opts = append(opts, b.Options...)

	_, err := tea.NewProgram(NewModel(fig, p, GetTheme(b.Theme)), opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
