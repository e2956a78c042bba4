package config

import (
	"errors"
	"testing"
)

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("rs232")
	if !ok {
		t.Fatal("expected preset, got none")
	}
	if p.MinVoltage != -12 || p.MaxVoltage != 12 {
		t.Errorf("unexpected levels %d..%d", p.MinVoltage, p.MaxVoltage)
	}
}

func TestPresetOverrides(t *testing.T) {
	o, err := PresetOverrides("ttl")
	if err != nil {
		t.Fatal(err)
	}
	if o.Data != nil || *o.MinVoltage != 0 || *o.MaxVoltage != 5 {
		t.Errorf("unexpected overrides %+v", o)
	}

	_, err = PresetOverrides("nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}
