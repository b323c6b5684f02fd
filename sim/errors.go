package sim

import (
	"github.com/pkg/errors"

	"github.com/mooori/sim-validator-assignment/inter/stake"
)

// Configuration errors. They are detected before or at the start of a run and
// carry the offending values in their wrapped message.
var (
	ErrInvalidConfig        = errors.New("invalid config")
	ErrZeroStakePerSeat     = errors.New("stake per seat must be positive")
	ErrInvalidThreshold     = errors.New("max malicious stake per shard must lie in (0, 1)")
	ErrShardIndexOutOfRange = errors.New("shard index out of range")
	ErrInsufficientSeats    = errors.New("insufficient seats")
	ErrShardSeatCount       = errors.New("unexpected number of seats for shard")
	ErrTooManyValidators    = errors.New("too many validators")
)

// Invariant violations. They mean the input data cannot be represented and
// abort the run.
var (
	ErrZeroPopulationStake = errors.New("population stake is zero")
	ErrSeatOverflow        = errors.New("seat count overflow")
	ErrStakeOverflow       = stake.ErrOverflow
)
