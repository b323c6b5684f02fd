package sim

import (
	"math"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/Fantom-foundation/lachesis-base/inter/pos"
	"github.com/pkg/errors"
)

// SeatWeights builds a seat-weighted validator set: every validator weighs as
// many units as it holds seats, and validators without seats are left out.
// Validator i is registered under ID i+1 since ID 0 is reserved.
//
// The set gives the BFT quorum (two thirds plus one) of the seats, which is
// what a single shard would need if every seat voted there.
func (vv Validators) SeatWeights() (*pos.Validators, error) {
	var total uint64
	for i := range vv {
		total += vv[i].NumSeats
		if total > math.MaxUint32/2 {
			return nil, errors.Wrapf(ErrSeatOverflow, "%d+ seats exceed the validator weight range", total)
		}
	}

	builder := pos.NewBuilder()
	for i := range vv {
		builder.Set(idx.ValidatorID(i+1), pos.Weight(vv[i].NumSeats))
	}
	return builder.Build(), nil
}
