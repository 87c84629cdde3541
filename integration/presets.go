// Package integration provides named simulation profiles for assembling a
// fake gossip network. Presets bundle the knobs that vary between demo
// workloads (peer count, gossip depth, transaction payload size) so the
// launcher can spin up a network without a dozen individual flags.
package integration

import "fmt"

// PresetConfig captures the tunable parameters of a simulated network.
type PresetConfig struct {
	Name string `json:"name"`
	// Peers is the number of participants; supermajority thresholds
	// derive from it.
	Peers int `json:"peers"`
	// Sweeps is how many all-to-all gossip rounds the simulation runs.
	Sweeps int `json:"sweeps"`
	// TxPayloadBytes is the size of the synthetic transaction each peer
	// buffers per sweep. Zero disables transactions.
	TxPayloadBytes int `json:"txPayloadBytes"`
}

// DefaultPreset is a four-peer network, the smallest where a supermajority
// (3) falls short of unanimity.
func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:           "default",
		Peers:          4,
		Sweeps:         10,
		TxPayloadBytes: 16,
	}
}

// SmallNetPreset runs the minimum sensible network. With two peers every
// supermajority is unanimity, which makes consensus traces easy to read.
func SmallNetPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "small"
	cfg.Peers = 2
	cfg.Sweeps = 6
	return cfg
}

// WideNetPreset trades runtime for a larger validator set.
func WideNetPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "wide"
	cfg.Peers = 7
	cfg.Sweeps = 8
	cfg.TxPayloadBytes = 32
	return cfg
}

// GetPresetByName resolves a preset by its Name field.
func GetPresetByName(name string) (PresetConfig, error) {
	for _, cfg := range []PresetConfig{DefaultPreset(), SmallNetPreset(), WideNetPreset()} {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return PresetConfig{}, fmt.Errorf("unknown preset %q", name)
}

// Validate rejects configurations that cannot form a network.
func (cfg PresetConfig) Validate() error {
	if cfg.Peers < 2 {
		return fmt.Errorf("preset %q: need at least 2 peers, got %d", cfg.Name, cfg.Peers)
	}
	if cfg.Sweeps < 1 {
		return fmt.Errorf("preset %q: need at least 1 sweep, got %d", cfg.Name, cfg.Sweeps)
	}
	if cfg.TxPayloadBytes < 0 {
		return fmt.Errorf("preset %q: negative tx payload size", cfg.Name)
	}
	return nil
}
