package sim

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/holiman/uint256"
)

// Seat is one unit of stake priced at exactly the stake per seat. It refers
// to its validator by arena handle.
type Seat struct {
	Validator idx.Validator
}

// PartialSeat carries the remainder of a validator's stake that does not pay
// for a full seat. Its weight satisfies 0 < Weight < stake per seat.
type PartialSeat struct {
	Validator idx.Validator
	Weight    *uint256.Int
}

// Seats returns the NumSeats identical seats of validator i.
func (vv Validators) Seats(i idx.Validator) []Seat {
	seats := make([]Seat, vv[i].NumSeats)
	for j := range seats {
		seats[j] = Seat{Validator: i}
	}
	return seats
}

// PartialSeatOf returns the partial seat of validator i, or false if its stake
// is a multiple of stakePerSeat.
func (vv Validators) PartialSeatOf(i idx.Validator, stakePerSeat *uint256.Int) (PartialSeat, bool, error) {
	if stakePerSeat == nil || stakePerSeat.IsZero() {
		return PartialSeat{}, false, ErrZeroStakePerSeat
	}
	weight := new(uint256.Int).Mod(vv[i].Stake, stakePerSeat)
	if weight.IsZero() {
		return PartialSeat{}, false, nil
	}
	return PartialSeat{Validator: i, Weight: weight}, true, nil
}

// NewOrderedSeats concatenates the seats of all validators in arena order.
// The order carries no meaning but is reproducible for a given arena.
func NewOrderedSeats(vv Validators) []Seat {
	var total uint64
	for i := range vv {
		total += vv[i].NumSeats
	}
	seats := make([]Seat, 0, total)
	for i := range vv {
		seats = append(seats, vv.Seats(idx.Validator(i))...)
	}
	return seats
}

// NewOrderedPartialSeats collects the partial seats of all validators with a
// positive remainder, in arena order.
func NewOrderedPartialSeats(vv Validators, stakePerSeat *uint256.Int) ([]PartialSeat, error) {
	var partialSeats []PartialSeat
	for i := range vv {
		ps, ok, err := vv.PartialSeatOf(idx.Validator(i), stakePerSeat)
		if err != nil {
			return nil, err
		}
		if ok {
			partialSeats = append(partialSeats, ps)
		}
	}
	return partialSeats, nil
}
