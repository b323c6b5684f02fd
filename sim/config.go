package sim

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/mooori/sim-validator-assignment/inter/stake"
)

// DefaultHeartbeatInterval is the number of blocks between progress log lines.
const DefaultHeartbeatInterval = 100_000

var validate = validator.New()

// Config holds the parameters of one simulation run. It is built once at
// startup and only read afterwards.
type Config struct {
	NumBlocks uint64 `validate:"gt=0"`
	// NumShards is bounded so that shard indices always fit an int.
	NumShards uint64 `validate:"gt=0,lte=65535"`
	// The validators must provide at least NumShards * SeatsPerShard seats. Seats
	// above that number stay unassigned in a block.
	SeatsPerShard uint64
	// StakePerSeat is the price of one seat.
	StakePerSeat *uint256.Int `validate:"-"`
	// A shard whose malicious stake ratio is strictly above this threshold is
	// corrupted.
	MaxMaliciousStakePerShard stake.Ratio `validate:"-"`
	// IncludePartialSeats assigns the stake remainders below one seat price to
	// shards as partial seats instead of ignoring them.
	IncludePartialSeats bool
	// ValidatorData is the file validators are read from. Empty means a mocked
	// population.
	ValidatorData     string
	HeartbeatInterval uint64 `validate:"gt=0"`
}

// Validate checks the config and reports the offending values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}
	if c.StakePerSeat == nil || c.StakePerSeat.IsZero() {
		return ErrZeroStakePerSeat
	}
	if !stake.Fits(c.StakePerSeat) {
		return errors.Wrapf(stake.ErrOverflow, "stake per seat %s", stake.Dec(c.StakePerSeat))
	}
	if !c.MaxMaliciousStakePerShard.IsProperFraction() {
		return errors.Wrapf(ErrInvalidThreshold, "got %s", c.MaxMaliciousStakePerShard)
	}
	if _, err := c.TotalSeats(); err != nil {
		return err
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", fe.Field(), fe.Value(), rule))
	}
	return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, ", "))
}

// TotalSeats returns the number of seats all shards together require.
func (c *Config) TotalSeats() (uint64, error) {
	hi, lo := bits.Mul64(c.NumShards, c.SeatsPerShard)
	if hi != 0 {
		return 0, errors.Wrapf(ErrInvalidConfig, "%d shards * %d seats per shard overflows", c.NumShards, c.SeatsPerShard)
	}
	return lo, nil
}

// CollectSeatsForShard returns the consecutive seats of shard shardIdx, i.e.
// seats[shardIdx*SeatsPerShard : (shardIdx+1)*SeatsPerShard]. The result
// shares memory with seats.
func (c *Config) CollectSeatsForShard(shardIdx uint64, seats []Seat) ([]Seat, error) {
	if shardIdx >= c.NumShards {
		return nil, errors.Wrapf(ErrShardIndexOutOfRange, "shard index %d is invalid for %d shards", shardIdx, c.NumShards)
	}
	required, err := c.TotalSeats()
	if err != nil {
		return nil, err
	}
	if uint64(len(seats)) < required {
		return nil, errors.Wrapf(ErrInsufficientSeats, "validators fill only %d/%d of seats", len(seats), required)
	}
	start := shardIdx * c.SeatsPerShard
	return seats[start : start+c.SeatsPerShard], nil
}

// CollectPartialSeatsForShard returns the partial seats at every position j
// with j % NumShards == shardIdx.
//
// Each validator holds at most one partial seat, so there are at most as many
// partial seats as validators. Assigning by position modulo the shard count
// spreads them as evenly as possible. There is no minimum per shard: partial
// seats only carry leftover stake.
func (c *Config) CollectPartialSeatsForShard(shardIdx uint64, partialSeats []PartialSeat) ([]PartialSeat, error) {
	if shardIdx >= c.NumShards {
		return nil, errors.Wrapf(ErrShardIndexOutOfRange, "shard index %d is invalid for %d shards", shardIdx, c.NumShards)
	}
	n := uint64(len(partialSeats))
	if shardIdx >= n {
		return nil, nil
	}
	collected := make([]PartialSeat, 0, (n-shardIdx+c.NumShards-1)/c.NumShards)
	for j := shardIdx; j < n; j += c.NumShards {
		collected = append(collected, partialSeats[j])
	}
	return collected, nil
}

func (c *Config) String() string {
	stakePerSeat := "<nil>"
	if c.StakePerSeat != nil {
		stakePerSeat = stake.Dec(c.StakePerSeat)
	}
	return fmt.Sprintf("blocks=%d shards=%d seats_per_shard=%d stake_per_seat=%s max_malicious_stake_per_shard=%s partial_seats=%t",
		c.NumBlocks, c.NumShards, c.SeatsPerShard, stakePerSeat, c.MaxMaliciousStakePerShard, c.IncludePartialSeats)
}
