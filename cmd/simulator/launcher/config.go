// This file maps the CLI context to the config structs of the commands.

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/mooori/sim-validator-assignment/integration"
	"github.com/mooori/sim-validator-assignment/inter/stake"
	"github.com/mooori/sim-validator-assignment/sim"
)

// Config aggregates everything the run command needs. Its JSON names are the
// keys of the YAML config file.
type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Mock       MockConfig       `json:"mock"`
	Metrics    MetricsConfig    `json:"metrics"`
	Progress   bool             `json:"progress"`
}

// SimulationConfig holds the run parameters before they are parsed into a
// sim.Config.
type SimulationConfig struct {
	integration.PresetConfig
	IncludePartialSeats bool   `json:"include_partial_seats"`
	ValidatorData       string `json:"validator_data"`
	Seed                *int64 `json:"seed,omitempty"`
}

type MockConfig struct {
	Validators int    `json:"validators"`
	Malicious  int    `json:"malicious"`
	Stake      uint64 `json:"stake"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
	Port    int    `json:"port"`
}

// DownloadConfig holds the parameters of the download command.
type DownloadConfig struct {
	Protocol    string
	RPCURL      string
	BlockHeight *uint64
	Out         string
	Timeout     time.Duration
}

// StatsConfig holds the parameters of the stats command.
type StatsConfig struct {
	ValidatorData       string
	StakePerSeat        *uint256.Int
	IncludePartialSeats bool
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	defaults := DefaultConfig()
	return Config{
		Mock: MockConfig{
			Validators: defaults.Mock.Validators,
			Malicious:  defaults.Mock.Malicious,
			Stake:      defaults.Mock.Stake,
		},
		Metrics: MetricsConfig{
			Enabled: defaults.Metrics.Enable,
			Addr:    defaults.Metrics.HTTPAddr,
			Port:    defaults.Metrics.HTTPPort,
		},
	}
}

// MakeRunConfig merges defaults, the selected preset, the optional config
// file, then CLI flag overrides.
func MakeRunConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	name := DefaultConfig().Preset
	if ctx.IsSet("preset") {
		name = ctx.String("preset")
	}
	preset, err := integration.GetPresetByName(name)
	if err != nil {
		return Config{}, err
	}
	integration.ApplyPreset(&cfg.Simulation.PresetConfig, preset)

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "failed to load config file %s", file)
		}
	}

	applyCLIOverrides(ctx, &cfg)
	return cfg, nil
}

// SimConfig parses the string encoded amounts and validates the result.
func (c SimulationConfig) SimConfig() (*sim.Config, error) {
	stakePerSeat, err := stake.Parse(c.StakePerSeat)
	if err != nil {
		return nil, errors.Wrap(err, "stake per seat")
	}
	threshold, err := stake.ParseRatio(c.MaxMaliciousStakePerShard)
	if err != nil {
		return nil, errors.Wrap(err, "max malicious stake per shard")
	}
	cfg := &sim.Config{
		NumBlocks:                 c.NumBlocks,
		NumShards:                 c.NumShards,
		SeatsPerShard:             c.SeatsPerShard,
		StakePerSeat:              stakePerSeat,
		MaxMaliciousStakePerShard: threshold,
		IncludePartialSeats:       c.IncludePartialSeats,
		ValidatorData:             c.ValidatorData,
		HeartbeatInterval:         c.HeartbeatInterval,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MakeDownloadConfig reads the flags of the download command.
func MakeDownloadConfig(ctx *cli.Context) DownloadConfig {
	cfg := DownloadConfig{
		Protocol: ctx.String("protocol"),
		RPCURL:   ctx.String("rpc-url"),
		Out:      resolvePath(ctx.String("out")),
		Timeout:  ctx.Duration("rpc.timeout"),
	}
	if ctx.IsSet("block-height") {
		height := ctx.Uint64("block-height")
		cfg.BlockHeight = &height
	}
	return cfg
}

// MakeStatsConfig reads the flags of the stats command. Both the data file and
// the stake per seat are required.
func MakeStatsConfig(ctx *cli.Context) (StatsConfig, error) {
	path := ctx.String("validator-data")
	if path == "" {
		return StatsConfig{}, errors.New("--validator-data is required")
	}
	if ctx.String("stake-per-seat") == "" {
		return StatsConfig{}, errors.New("--stake-per-seat is required")
	}
	stakePerSeat, err := stake.Parse(ctx.String("stake-per-seat"))
	if err != nil {
		return StatsConfig{}, errors.Wrap(err, "stake per seat")
	}
	return StatsConfig{
		ValidatorData:       resolvePath(path),
		StakePerSeat:        stakePerSeat,
		IncludePartialSeats: ctx.Bool("include-partial-seats"),
	}, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("num-blocks") {
		cfg.Simulation.NumBlocks = ctx.Uint64("num-blocks")
	}
	if ctx.IsSet("num-shards") {
		cfg.Simulation.NumShards = ctx.Uint64("num-shards")
	}
	if ctx.IsSet("seats-per-shard") {
		cfg.Simulation.SeatsPerShard = ctx.Uint64("seats-per-shard")
	}
	if ctx.IsSet("stake-per-seat") {
		cfg.Simulation.StakePerSeat = ctx.String("stake-per-seat")
	}
	if ctx.IsSet("max-malicious-stake-per-shard") {
		cfg.Simulation.MaxMaliciousStakePerShard = ctx.String("max-malicious-stake-per-shard")
	}
	if ctx.IsSet("heartbeat-interval") {
		cfg.Simulation.HeartbeatInterval = ctx.Uint64("heartbeat-interval")
	}
	if ctx.IsSet("include-partial-seats") {
		cfg.Simulation.IncludePartialSeats = ctx.Bool("include-partial-seats")
	}
	if ctx.IsSet("validator-data") {
		cfg.Simulation.ValidatorData = resolvePath(ctx.String("validator-data"))
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		cfg.Simulation.Seed = &seed
	}

	if ctx.IsSet("mock-validators") {
		cfg.Mock.Validators = ctx.Int("mock-validators")
		// one third malicious unless told otherwise
		cfg.Mock.Malicious = cfg.Mock.Validators / 3
	}
	if ctx.IsSet("mock-malicious") {
		cfg.Mock.Malicious = ctx.Int("mock-malicious")
	}
	if ctx.IsSet("mock-stake") {
		cfg.Mock.Stake = ctx.Uint64("mock-stake")
	}

	if ctx.IsSet("progress") {
		cfg.Progress = ctx.Bool("progress")
	}
	if ctx.IsSet("metrics") {
		cfg.Metrics.Enabled = ctx.Bool("metrics")
	}
	if ctx.IsSet("metrics.addr") {
		cfg.Metrics.Addr = ctx.String("metrics.addr")
	}
	if ctx.IsSet("metrics.port") {
		cfg.Metrics.Port = ctx.Int("metrics.port")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func (c MetricsConfig) listenAddr() string {
	return fmt.Sprintf("%s:%d", c.Addr, c.Port)
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
