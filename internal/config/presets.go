package config

import (
	"fmt"
	"sort"
)

// Preset is a named pair of line voltages for a common signalling standard.
type Preset struct {
	Description string
	MinVoltage  int
	MaxVoltage  int
}

var Presets = map[string]Preset{
	"ttl":     {Description: "5V TTL logic", MinVoltage: 0, MaxVoltage: 5},
	"cmos":    {Description: "3.3V CMOS logic", MinVoltage: 0, MaxVoltage: 3},
	"rs232":   {Description: "RS-232 line levels", MinVoltage: -12, MaxVoltage: 12},
	"rs485":   {Description: "RS-485 differential swing", MinVoltage: -5, MaxVoltage: 5},
	"bipolar": {Description: "symmetric +-1V teaching levels", MinVoltage: -1, MaxVoltage: 1},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// PresetOverrides returns the voltage layer for a named preset.
func PresetOverrides(name string) (Overrides, error) {
	p, ok := GetPreset(name)
	if !ok {
		return Overrides{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return Overrides{MinVoltage: &p.MinVoltage, MaxVoltage: &p.MaxVoltage}, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
