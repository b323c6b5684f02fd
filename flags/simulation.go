package flags

import (
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/mooori/sim-validator-assignment/integration"
)

// Flags shared by the run and stats commands.
var (
	ValidatorDataFlag = cli.StringFlag{
		Name:  "validator-data",
		Usage: "JSON file with validator data; a mocked population is used if empty",
	}
	StakePerSeatFlag = cli.StringFlag{
		Name:  "stake-per-seat",
		Usage: "Amount of stake required for one seat (base 10)",
	}
	IncludePartialSeatsFlag = cli.BoolFlag{
		Name:  "include-partial-seats",
		Usage: "Assign stake not covering a full seat to partial seats instead of ignoring it",
	}
)

// SimulationFlags covers the parameters of a simulation run.

func SimulationFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Named parameter preset (" + strings.Join(integration.Names(), "|") + ")",
			Value: "default",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file applied on top of the preset",
		},
		cli.Uint64Flag{
			Name:  "num-blocks",
			Usage: "Number of simulated blocks",
		},
		cli.Uint64Flag{
			Name:  "num-shards",
			Usage: "Number of shards per block",
		},
		cli.Uint64Flag{
			Name:  "seats-per-shard",
			Usage: "Number of full seats assigned to every shard",
		},
		StakePerSeatFlag,
		cli.StringFlag{
			Name:  "max-malicious-stake-per-shard",
			Usage: "Shards with a higher ratio of malicious stake are corrupted (e.g. 1/3 or 0.33)",
		},
		ValidatorDataFlag,
		IncludePartialSeatsFlag,
		cli.Uint64Flag{
			Name:  "heartbeat-interval",
			Usage: "Number of blocks between progress log lines",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed of the shuffling generator; random if unset",
		},
		cli.BoolFlag{
			Name:  "progress",
			Usage: "Show a progress bar on stderr",
		},
		cli.IntFlag{
			Name:  "mock-validators",
			Usage: "Size of the mocked population",
		},
		cli.IntFlag{
			Name:  "mock-malicious",
			Usage: "Number of malicious validators in the mocked population",
		},
		cli.Uint64Flag{
			Name:  "mock-stake",
			Usage: "Stake of every mocked validator",
		},
	}
}

// MetricsFlags covers the Prometheus endpoint served during a run.

func MetricsFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "metrics",
			Usage: "Serve Prometheus metrics while simulating",
		},
		cli.StringFlag{
			Name:  "metrics.addr",
			Usage: "Metrics server listening interface",
			Value: "127.0.0.1",
		},
		cli.IntFlag{
			Name:  "metrics.port",
			Usage: "Metrics server listening port",
			Value: 6060,
		},
	}
}

// StatsFlags covers the population statistics command.

func StatsFlags() []cli.Flag {
	return []cli.Flag{
		ValidatorDataFlag,
		StakePerSeatFlag,
		IncludePartialSeatsFlag,
	}
}
