package sim

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/mooori/sim-validator-assignment/inter/stake"
)

// Shard is the set of seats assigned to one shard index for one block.
type Shard struct {
	Seats          []Seat
	PartialSeats   []PartialSeat
	Stake          *uint256.Int
	MaliciousStake *uint256.Int
}

// NewShard sums the stake of the given seats. It requires exactly
// SeatsPerShard full seats; any number of partial seats is accepted.
func NewShard(c *Config, vv Validators, seats []Seat, partialSeats []PartialSeat) (*Shard, error) {
	if uint64(len(seats)) != c.SeatsPerShard {
		return nil, errors.Wrapf(ErrShardSeatCount, "shard requires %d seats, received %d", c.SeatsPerShard, len(seats))
	}

	var malicious uint64
	for _, s := range seats {
		if vv.Get(s.Validator).IsMalicious {
			malicious++
		}
	}
	total, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(uint64(len(seats))), c.StakePerSeat)
	if overflow {
		return nil, errors.Wrapf(stake.ErrOverflow, "%d seats", len(seats))
	}
	maliciousStake := new(uint256.Int).Mul(uint256.NewInt(malicious), c.StakePerSeat)

	var err error
	for _, ps := range partialSeats {
		if total, err = stake.Add(total, ps.Weight); err != nil {
			return nil, errors.Wrap(err, "shard stake")
		}
		if vv.Get(ps.Validator).IsMalicious {
			maliciousStake = new(uint256.Int).Add(maliciousStake, ps.Weight)
		}
	}
	if !stake.Fits(total) {
		return nil, errors.Wrapf(stake.ErrOverflow, "shard stake %s", stake.Dec(total))
	}

	return &Shard{
		Seats:          seats,
		PartialSeats:   partialSeats,
		Stake:          total,
		MaliciousStake: maliciousStake,
	}, nil
}

// IsCorrupted reports whether MaliciousStake / Stake is strictly above the
// configured threshold. A shard without stake is never corrupted.
func (s *Shard) IsCorrupted(c *Config) bool {
	if s.Stake.IsZero() {
		return false
	}
	return c.MaxMaliciousStakePerShard.ExceededBy(s.MaliciousStake, s.Stake)
}
