package integration

import (
	"testing"
)

func TestDefaultPresetHasReasonableDefaults(t *testing.T) {
	cfg := DefaultPreset()

	if cfg.Name != "default" {
		t.Fatalf("Name = %q, want 'default'", cfg.Name)
	}
	if cfg.Peers != 4 {
		t.Fatalf("Peers = %d, want 4", cfg.Peers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default preset must validate: %v", err)
	}
}

func TestPresetsAreDistinctAndValid(t *testing.T) {
	presets := []PresetConfig{DefaultPreset(), SmallNetPreset(), WideNetPreset()}

	seen := map[string]bool{}
	for _, cfg := range presets {
		if seen[cfg.Name] {
			t.Fatalf("duplicate preset name %q", cfg.Name)
		}
		seen[cfg.Name] = true

		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset %q does not validate: %v", cfg.Name, err)
		}
	}
}

func TestGetPresetByName(t *testing.T) {
	tests := []struct {
		name    string
		want    int // expected peer count
		wantErr bool
	}{
		{"default", 4, false},
		{"small", 2, false},
		{"wide", 7, false},
		{"archive", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetPresetByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GetPresetByName(%q) should fail", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetPresetByName(%q): %v", tt.name, err)
			}
			if cfg.Peers != tt.want {
				t.Fatalf("preset %q peers = %d, want %d", tt.name, cfg.Peers, tt.want)
			}
		})
	}
}

func TestValidateRejectsDegenerateConfigs(t *testing.T) {
	cfg := DefaultPreset()
	cfg.Peers = 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("single-peer network must be rejected")
	}

	cfg = DefaultPreset()
	cfg.Sweeps = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero sweeps must be rejected")
	}

	cfg = DefaultPreset()
	cfg.TxPayloadBytes = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative payload size must be rejected")
	}
}
