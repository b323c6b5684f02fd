package launcher

import (
	"github.com/mooori/sim-validator-assignment/integration"
	"github.com/mooori/sim-validator-assignment/sim"
)

// Defaults bundles the baseline values the launcher uses before presets,
// config files and flags override them.

type Defaults struct {
	Preset  string
	Mock    MockDefaults
	Metrics MetricsDefaults
}

// MockDefaults describe the population simulated when no validator data file
// is given.

type MockDefaults struct {
	Validators int    //	Number of mocked validators.
	Malicious  int    //	How many of them are malicious; the first ones in the list are.
	Stake      uint64 //	Stake of every mocked validator.
}

type MetricsDefaults struct {
	Enable   bool   //	Toggle for the metrics server; when true /metrics is served during a run.
	HTTPAddr string //	IP/interface the metrics server binds to.
	HTTPPort int    //	TCP port of the metrics server.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Preset: integration.DefaultPreset().Name,
		Mock: MockDefaults{
			Validators: sim.MockValidators,
			Malicious:  sim.MockMalicious,
			Stake:      sim.MockStake,
		},
		Metrics: MetricsDefaults{
			Enable:   false,
			HTTPAddr: "127.0.0.1",
			HTTPPort: 6060,
		},
	}
}
