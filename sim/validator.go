package sim

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/mooori/sim-validator-assignment/inter/stake"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

// Validator is one member of the simulated population. Validators are owned
// by a Validators arena and referenced by their idx.Validator position.
type Validator struct {
	AccountID   string
	Stake       *uint256.Int
	IsMalicious bool
	// NumSeats is floor(Stake / stake per seat).
	NumSeats uint64
	// TotalStakeShare is Stake divided by the population stake.
	TotalStakeShare *big.Rat
}

// Validators is the arena every Seat and PartialSeat points into.
type Validators []Validator

// Get returns the validator behind handle i.
func (vv Validators) Get(i idx.Validator) *Validator {
	return &vv[i]
}

// PopulationStats aggregates a validator population. It is computed once per
// run and never changes afterwards.
type PopulationStats struct {
	Validators     int
	Stake          *uint256.Int
	MaliciousStake *uint256.Int
	Seats          uint64
	MaliciousSeats uint64
}

// MaliciousStakeRatio returns MaliciousStake / Stake.
func (s PopulationStats) MaliciousStakeRatio() *big.Rat {
	return ratio(s.MaliciousStake.ToBig(), s.Stake.ToBig())
}

// MaliciousSeatRatio returns MaliciousSeats / Seats, zero without seats.
func (s PopulationStats) MaliciousSeatRatio() *big.Rat {
	return ratio(new(big.Int).SetUint64(s.MaliciousSeats), new(big.Int).SetUint64(s.Seats))
}

func ratio(num, denom *big.Int) *big.Rat {
	if denom.Sign() == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(num, denom)
}

// SeatsPerStake returns the number of full seats amount pays for.
func SeatsPerStake(amount, stakePerSeat *uint256.Int) (uint64, error) {
	if stakePerSeat == nil || stakePerSeat.IsZero() {
		return 0, ErrZeroStakePerSeat
	}
	seats := new(uint256.Int).Div(amount, stakePerSeat)
	if !seats.IsUint64() {
		return 0, errors.Wrapf(ErrSeatOverflow, "stake %s buys %s seats", stake.Dec(amount), stake.Dec(seats))
	}
	return seats.Uint64(), nil
}

// ParseRawValidators turns validator records into the population arena and
// its statistics. The result does not depend on the order of records except
// for the order of the returned validators, which follows the input.
func ParseRawValidators(stakePerSeat *uint256.Int, records []validatordata.Record) (PopulationStats, Validators, error) {
	if stakePerSeat == nil || stakePerSeat.IsZero() {
		return PopulationStats{}, nil, ErrZeroStakePerSeat
	}
	if uint64(len(records)) > math.MaxUint32 {
		return PopulationStats{}, nil, errors.Wrapf(ErrTooManyValidators, "%d records", len(records))
	}

	stats := PopulationStats{
		Validators:     len(records),
		Stake:          new(uint256.Int),
		MaliciousStake: new(uint256.Int),
	}
	validators := make(Validators, 0, len(records))
	for _, r := range records {
		amount, err := stake.FromBig(r.Stake)
		if err != nil {
			return PopulationStats{}, nil, errors.Wrapf(err, "validator %s", r.AccountID)
		}
		numSeats, err := SeatsPerStake(amount, stakePerSeat)
		if err != nil {
			return PopulationStats{}, nil, errors.Wrapf(err, "validator %s", r.AccountID)
		}

		if stats.Stake, err = stake.Add(stats.Stake, amount); err != nil {
			return PopulationStats{}, nil, errors.Wrap(err, "population stake")
		}
		var carry uint64
		if stats.Seats, carry = bits.Add64(stats.Seats, numSeats, 0); carry != 0 {
			return PopulationStats{}, nil, errors.Wrap(ErrSeatOverflow, "population seats")
		}
		if r.IsMalicious {
			// Bounded by the population totals checked above.
			stats.MaliciousStake = new(uint256.Int).Add(stats.MaliciousStake, amount)
			stats.MaliciousSeats += numSeats
		}

		validators = append(validators, Validator{
			AccountID:   r.AccountID,
			Stake:       amount,
			IsMalicious: r.IsMalicious,
			NumSeats:    numSeats,
		})
	}

	if stats.Stake.IsZero() {
		return PopulationStats{}, nil, errors.Wrapf(ErrZeroPopulationStake, "%d validators", len(records))
	}
	total := stats.Stake.ToBig()
	for i := range validators {
		validators[i].TotalStakeShare = new(big.Rat).SetFrac(validators[i].Stake.ToBig(), total)
	}
	return stats, validators, nil
}
