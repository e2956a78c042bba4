package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/viz"
	"github.com/san-kum/violationbit/internal/window"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Options carries what a backend factory may need from the command line.
type Options struct {
	Theme  string
	Out    io.Writer
	Logger *log.Logger
}

type Registry struct {
	backends map[string]func(Options) visualizer.Backend
}

func NewRegistry() *Registry {
	r := &Registry{
		backends: make(map[string]func(Options) visualizer.Backend),
	}

	r.backends["tui"] = func(o Options) visualizer.Backend {
		return &viz.TUI{Theme: o.Theme}
	}
	r.backends["stream"] = func(o Options) visualizer.Backend {
		out := o.Out
		if out == nil {
			out = os.Stdout
		}
		return viz.NewStream(out)
	}
	r.backends["window"] = func(o Options) visualizer.Backend {
		return window.New(o.Logger)
	}

	return r
}

func (r *Registry) Register(name string, fn func(Options) visualizer.Backend) {
	r.backends[name] = fn
}

func (r *Registry) GetBackend(name string, opts Options) (visualizer.Backend, error) {
	fn, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownBackend, name, r.ListBackends())
	}
	return fn(opts), nil
}

func (r *Registry) ListBackends() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
