package launcher

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/mooori/sim-validator-assignment/sim"
	"github.com/mooori/sim-validator-assignment/utils/rand"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

func runSimulation(ctx *cli.Context) error {
	cfg, err := MakeRunConfig(ctx)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := simulate(runCtx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	return printReport(ctx.App.Writer, report)
}

// simulate loads the population described by cfg and runs the simulation.
// The progress bar, if enabled, is drawn on progressOut.
func simulate(ctx context.Context, cfg Config, progressOut io.Writer) (sim.Report, error) {
	simCfg, err := cfg.Simulation.SimConfig()
	if err != nil {
		return sim.Report{}, err
	}
	records, err := loadRecords(cfg)
	if err != nil {
		return sim.Report{}, err
	}
	stats, validators, err := sim.ParseRawValidators(simCfg.StakePerSeat, records)
	if err != nil {
		return sim.Report{}, err
	}

	var opts []sim.Option
	if cfg.Simulation.Seed != nil {
		log.WithField("seed", *cfg.Simulation.Seed).Info("Using deterministic shuffling")
		opts = append(opts, sim.WithRand(rand.NewDeterministicGenerator(*cfg.Simulation.Seed)))
	}
	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = newProgressBar(simCfg.NumBlocks, progressOut)
		opts = append(opts, sim.WithBlockHook(func(sim.Report) {
			_ = bar.Add(1)
		}))
	}

	simulator, err := sim.New(simCfg, stats, validators, opts...)
	if err != nil {
		return sim.Report{}, err
	}

	if cfg.Metrics.Enabled {
		srv := startMetricsServer(cfg.Metrics.listenAddr())
		defer srv.Stop()
	}

	report, err := simulator.Run(ctx)
	if bar != nil {
		_ = bar.Finish()
	}
	return report, err
}

func loadRecords(cfg Config) ([]validatordata.Record, error) {
	if cfg.Simulation.ValidatorData != "" {
		records, err := validatordata.ReadFile(cfg.Simulation.ValidatorData)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"file":       cfg.Simulation.ValidatorData,
			"validators": len(records),
		}).Info("Loaded validator data")
		return records, nil
	}

	if cfg.Mock.Validators <= 0 || cfg.Mock.Malicious < 0 || cfg.Mock.Malicious > cfg.Mock.Validators {
		return nil, errors.Wrapf(sim.ErrInvalidConfig, "mock population of %d validators with %d malicious",
			cfg.Mock.Validators, cfg.Mock.Malicious)
	}
	log.WithFields(logrus.Fields{
		"validators": cfg.Mock.Validators,
		"malicious":  cfg.Mock.Malicious,
		"stake":      cfg.Mock.Stake,
	}).Info("No validator data given, using a mocked population")
	return sim.NewMockValidators(cfg.Mock.Validators, cfg.Mock.Stake, cfg.Mock.Malicious), nil
}

func newProgressBar(blocks uint64, out io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		int64(blocks),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("simulating blocks"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(out) }),
	)
}

func printReport(w io.Writer, report sim.Report) error {
	ratio, _ := report.CorruptionRatio().Float64()
	_, err := fmt.Fprintf(w,
		"Simulated %s blocks with %s shards each. The number of corrupted shards out of total shards is %s / %s (%s ≈ %.3e)\n",
		humanize.Comma(int64(report.Blocks)),
		humanize.Comma(int64(report.ShardsPerBlock)),
		humanize.BigComma(new(big.Int).SetUint64(report.CorruptedShards)),
		humanize.BigComma(new(big.Int).SetUint64(report.ShardEvaluations)),
		report.CorruptionRatio().RatString(),
		ratio,
	)
	return err
}
