package integration

import (
	"fmt"
	"strings"
)

// Package integration provides named simulation presets. Presets bundle the
// topology and security parameters of a run (blocks, shards, seats, stake per
// seat, corruption threshold) into profiles so that a run can be started
// without repeating a dozen flags.
//
// Usage:
//   cfg := integration.QuickPreset() // smoke runs and CI
//   cfg := integration.PaperPreset() // long run on the mocked population
//
// Values set later from a config file or from flags override the preset.

// PresetConfig captures the run parameters that vary across presets. Amounts
// and fractions are kept as strings so that stakes above 64 bits and exact
// fractions such as "1/3" survive config files unchanged.
type PresetConfig struct {
	Name                      string `json:"-"`
	NumBlocks                 uint64 `json:"num_blocks"`
	NumShards                 uint64 `json:"num_shards"`
	SeatsPerShard             uint64 `json:"seats_per_shard"`
	StakePerSeat              string `json:"stake_per_seat"`
	MaxMaliciousStakePerShard string `json:"max_malicious_stake_per_shard"`
	HeartbeatInterval         uint64 `json:"heartbeat_interval"`
}

// DefaultPreset splits the 4000 seats of the mocked population into 10
// shards of 400.
func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:                      "default",
		NumBlocks:                 100_000,
		NumShards:                 10,
		SeatsPerShard:             400,
		StakePerSeat:              "1",
		MaxMaliciousStakePerShard: "1/3",
		HeartbeatInterval:         100_000,
	}
}

// QuickPreset finishes within seconds and is meant for local checks.
func QuickPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "quick"
	cfg.NumBlocks = 1_000
	cfg.NumShards = 4
	cfg.SeatsPerShard = 100
	cfg.HeartbeatInterval = 250
	return cfg
}

// PaperPreset keeps the topology of the default preset but simulates enough
// blocks to resolve corruption probabilities around one in a million.
func PaperPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "paper"
	cfg.NumBlocks = 10_000_000
	cfg.HeartbeatInterval = 1_000_000
	return cfg
}

// Names lists the known presets.
func Names() []string {
	return []string{"default", "quick", "paper"}
}

// GetPresetByName looks up a preset by its string identifier. Returns an error
// if the name is unrecognized.
//
// Example:
//
//	preset, err := integration.GetPresetByName("quick")
//	if err != nil {
//	    return err
//	}
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "default", "":
		return DefaultPreset(), nil
	case "quick":
		return QuickPreset(), nil
	case "paper":
		return PaperPreset(), nil
	default:
		return PresetConfig{}, fmt.Errorf("unknown preset: %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
}

// ApplyPreset merges a preset into target. Only non-zero preset fields
// override the corresponding target values.
//
// Example:
//
//	cfg := integration.DefaultPreset()
//	integration.ApplyPreset(&cfg, integration.QuickPreset())
func ApplyPreset(target *PresetConfig, preset PresetConfig) {
	if preset.NumBlocks > 0 {
		target.NumBlocks = preset.NumBlocks
	}
	if preset.NumShards > 0 {
		target.NumShards = preset.NumShards
	}
	if preset.SeatsPerShard > 0 {
		target.SeatsPerShard = preset.SeatsPerShard
	}
	if preset.StakePerSeat != "" {
		target.StakePerSeat = preset.StakePerSeat
	}
	if preset.MaxMaliciousStakePerShard != "" {
		target.MaxMaliciousStakePerShard = preset.MaxMaliciousStakePerShard
	}
	if preset.HeartbeatInterval > 0 {
		target.HeartbeatInterval = preset.HeartbeatInterval
	}
	if preset.Name != "" {
		target.Name = preset.Name
	}
}
