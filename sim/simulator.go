// Package sim estimates how often a sharded chain's per-shard security
// assumption breaks when seats are randomly reassigned to shards every block.
//
// Validators buy seats with their stake. For every simulated block all seats
// are shuffled and cut into consecutive per-shard groups; a shard is corrupted
// when its malicious stake ratio exceeds the configured threshold. The ratio of
// corrupted shards to evaluated shards over the whole run is the result.
package sim

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mooori/sim-validator-assignment/inter/stake"
	"github.com/mooori/sim-validator-assignment/utils/rand"
)

var log = logrus.WithField("prefix", "sim")

// Option customizes a Simulator.
type Option func(*Simulator)

// WithRand makes the simulator shuffle with rng instead of a crypto-seeded
// generator.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// WithBlockHook registers fn to be called after every simulated block with
// the running totals.
func WithBlockHook(fn func(Report)) Option {
	return func(s *Simulator) {
		s.onBlock = fn
	}
}

// Simulator runs a configured number of blocks against a fixed validator
// population. It is not safe for concurrent use.
type Simulator struct {
	cfg        *Config
	stats      PopulationStats
	validators Validators
	rng        *rand.Rand
	onBlock    func(Report)

	// Canonical pools in validator order and the per-block buffers they are
	// copied into before shuffling.
	seats        []Seat
	partialSeats []PartialSeat
	seatBuf      []Seat
	partialBuf   []PartialSeat
}

// New validates cfg against the population and prepares the seat pools.
func New(cfg *Config, stats PopulationStats, validators Validators, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	required, err := cfg.TotalSeats()
	if err != nil {
		return nil, err
	}
	if stats.Seats < required {
		return nil, errors.Wrapf(ErrInsufficientSeats, "validators cover %d seats, config requires %d", stats.Seats, required)
	}

	s := &Simulator{
		cfg:        cfg,
		stats:      stats,
		validators: validators,
		seats:      NewOrderedSeats(validators),
	}
	if cfg.IncludePartialSeats {
		if s.partialSeats, err = NewOrderedPartialSeats(validators, cfg.StakePerSeat); err != nil {
			return nil, err
		}
	}
	s.seatBuf = make([]Seat, len(s.seats))
	s.partialBuf = make([]PartialSeat, len(s.partialSeats))
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.NewGenerator()
	}
	return s, nil
}

// Run simulates cfg.NumBlocks blocks. Any error aborts the run. The context is
// checked between blocks; on cancellation the context error is returned.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	log.WithFields(logrus.Fields{
		"validators":      s.stats.Validators,
		"stake":           stake.Dec(s.stats.Stake),
		"malicious_stake": stake.Dec(s.stats.MaliciousStake),
		"seats":           s.stats.Seats,
		"malicious_seats": s.stats.MaliciousSeats,
	}).Info("Population loaded")
	log.WithFields(logrus.Fields{
		"malicious_stake_ratio": s.stats.MaliciousStakeRatio().FloatString(5),
		"malicious_seat_ratio":  s.stats.MaliciousSeatRatio().FloatString(5),
	}).Info("Population malicious ratios")
	log.WithField("config", s.cfg.String()).Info("Starting simulation")

	report := Report{ShardsPerBlock: s.cfg.NumShards}
	for block := uint64(0); block < s.cfg.NumBlocks; block++ {
		if err := ctx.Err(); err != nil {
			return Report{}, errors.Wrapf(err, "simulation stopped after %d blocks", block)
		}

		corrupted, err := s.simulateBlock()
		if err != nil {
			return Report{}, errors.Wrapf(err, "block %d", block)
		}
		report.Blocks++
		report.ShardEvaluations += s.cfg.NumShards
		report.CorruptedShards += corrupted

		simulatedBlocks.Inc()
		evaluatedShards.Add(float64(s.cfg.NumShards))
		corruptedShards.Add(float64(corrupted))

		if report.Blocks%s.cfg.HeartbeatInterval == 0 {
			log.WithFields(logrus.Fields{
				"blocks":    report.Blocks,
				"shards":    report.ShardEvaluations,
				"corrupted": report.CorruptedShards,
			}).Info("Heartbeat")
		}
		if s.onBlock != nil {
			s.onBlock(report)
		}
	}

	log.WithFields(logrus.Fields{
		"blocks":           report.Blocks,
		"shards_per_block": report.ShardsPerBlock,
		"corrupted":        report.CorruptedShards,
		"evaluations":      report.ShardEvaluations,
		"ratio":            report.CorruptionRatio().RatString(),
	}).Info("Simulation finished")
	return report, nil
}

// simulateBlock assigns every seat to a shard once and returns the number of
// corrupted shards.
func (s *Simulator) simulateBlock() (uint64, error) {
	copy(s.seatBuf, s.seats)
	Shuffle(s.rng, s.seatBuf)
	copy(s.partialBuf, s.partialSeats)
	Shuffle(s.rng, s.partialBuf)

	var corrupted uint64
	for shardIdx := uint64(0); shardIdx < s.cfg.NumShards; shardIdx++ {
		seats, err := s.cfg.CollectSeatsForShard(shardIdx, s.seatBuf)
		if err != nil {
			return 0, err
		}
		partialSeats, err := s.cfg.CollectPartialSeatsForShard(shardIdx, s.partialBuf)
		if err != nil {
			return 0, err
		}
		shard, err := NewShard(s.cfg, s.validators, seats, partialSeats)
		if err != nil {
			return 0, errors.Wrapf(err, "shard %d", shardIdx)
		}
		if shard.IsCorrupted(s.cfg) {
			corrupted++
		}
	}
	return corrupted, nil
}
