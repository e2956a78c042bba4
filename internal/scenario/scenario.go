// Package scenario renders a batch of signals described in a yaml file.
package scenario

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/violationbit/internal/config"
	"github.com/san-kum/violationbit/internal/export"
	"github.com/san-kum/violationbit/internal/visualizer"
)

// Scenario is a named list of signals to render.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Preset      string   `yaml:"preset"`
	Signals     []Signal `yaml:"signals"`
}

// Signal is a single rendered waveform. Voltages fall back to the
// scenario preset when omitted; data has no fallback and must be present.
type Signal struct {
	Name       string  `yaml:"name"`
	Data       *string `yaml:"data"`
	MinVoltage *int    `yaml:"min_voltage"`
	MaxVoltage *int    `yaml:"max_voltage"`
	Output     string  `yaml:"output"`
}

// Result records where a signal was written.
type Result struct {
	Name   string
	Output string
	Slots  int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	return &sc, nil
}

// Run renders every signal into dir. A failing signal does not stop the
// batch; all failures are returned together.
func Run(ctx context.Context, sc *Scenario, dir string, logger *log.Logger) ([]Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var base config.Overrides
	if sc.Preset != "" {
		o, err := config.PresetOverrides(sc.Preset)
		if err != nil {
			return nil, err
		}
		base = o
	}

	var errs *multierror.Error
	results := make([]Result, 0, len(sc.Signals))
	for i, sig := range sc.Signals {
		if err := ctx.Err(); err != nil {
			return results, multierror.Append(errs, err).ErrorOrNil()
		}
		name := sig.Name
		if name == "" {
			name = fmt.Sprintf("signal-%d", i+1)
		}
		logger.Info("rendering", "step", fmt.Sprintf("%d/%d", i+1, len(sc.Signals)), "signal", name)

		res, err := render(sig, name, base, dir)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		results = append(results, res)
	}
	return results, errs.ErrorOrNil()
}

func render(sig Signal, name string, base config.Overrides, dir string) (Result, error) {
	cfg, err := config.Resolve(base, config.Overrides{
		MinVoltage: sig.MinVoltage,
		MaxVoltage: sig.MaxVoltage,
		Data:       sig.Data,
	})
	if err != nil {
		return Result{}, err
	}

	fig, err := visualizer.New(cfg).Figure()
	if err != nil {
		return Result{}, err
	}

	out := sig.Output
	if out == "" {
		out = name + ".png"
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	if err := export.Write(out, fig, fig.Trace()); err != nil {
		return Result{}, err
	}
	return Result{Name: name, Output: out, Slots: fig.Slots()}, nil
}
