package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDelay   = 500 * time.Millisecond
	DefaultBackend = "tui"
	DefaultTheme   = "purple"
)

var (
	// ErrMissing is returned by Resolve when a required value was never set.
	ErrMissing = errors.New("config: required value not set")

	// ErrUnknownPreset is returned for a preset name that does not exist.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Config is the fully resolved run configuration. It is built once at
// startup and passed by value.
type Config struct {
	MinVoltage int           `yaml:"min_voltage"`
	MaxVoltage int           `yaml:"max_voltage"`
	Data       string        `yaml:"data"`
	Delay      time.Duration `yaml:"delay"`
	Backend    string        `yaml:"backend"`
	Theme      string        `yaml:"theme"`
}

// Overrides is one configuration layer. Nil fields leave the value below
// untouched.
type Overrides struct {
	MinVoltage *int           `yaml:"min_voltage"`
	MaxVoltage *int           `yaml:"max_voltage"`
	Data       *string        `yaml:"data"`
	Delay      *time.Duration `yaml:"delay"`
	Backend    *string        `yaml:"backend"`
	Theme      *string        `yaml:"theme"`
}

func DefaultConfig() Config {
	return Config{
		Delay:   DefaultDelay,
		Backend: DefaultBackend,
		Theme:   DefaultTheme,
	}
}

// Resolve applies layers in order on top of DefaultConfig. Later layers win.
// The voltages and the data string have no defaults and must be set by
// some layer.
func Resolve(layers ...Overrides) (Config, error) {
	cfg := DefaultConfig()
	var seenMin, seenMax, seenData bool
	for _, o := range layers {
		cfg = cfg.Apply(o)
		seenMin = seenMin || o.MinVoltage != nil
		seenMax = seenMax || o.MaxVoltage != nil
		seenData = seenData || o.Data != nil
	}

	var missing []string
	if !seenMin {
		missing = append(missing, "min-voltage")
	}
	if !seenMax {
		missing = append(missing, "max-voltage")
	}
	if !seenData {
		missing = append(missing, "data")
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return cfg, cfg.Validate()
}

// Apply returns a copy of c with every non-nil field of o set.
func (c Config) Apply(o Overrides) Config {
	if o.MinVoltage != nil {
		c.MinVoltage = *o.MinVoltage
	}
	if o.MaxVoltage != nil {
		c.MaxVoltage = *o.MaxVoltage
	}
	if o.Data != nil {
		c.Data = *o.Data
	}
	if o.Delay != nil {
		c.Delay = *o.Delay
	}
	if o.Backend != nil {
		c.Backend = *o.Backend
	}
	if o.Theme != nil {
		c.Theme = *o.Theme
	}
	return c
}

func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("config: delay must not be negative, got %v", c.Delay)
	}
	return nil
}

// Load reads a yaml layer from path.
func Load(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return o, nil
}

func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Write encodes cfg as yaml to w.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Overrides converts a resolved config back into a complete layer.
func (c Config) Overrides() Overrides {
	return Overrides{
		MinVoltage: &c.MinVoltage,
		MaxVoltage: &c.MaxVoltage,
		Data:       &c.Data,
		Delay:      &c.Delay,
		Backend:    &c.Backend,
		Theme:      &c.Theme,
	}
}
