// Package stake provides the fixed-width arithmetic used for validator stake.
//
// Stake amounts are unsigned 128-bit integers. They are held in 256-bit
// integers (holiman/uint256) so that the product of two amounts, which is what
// an exact fraction comparison needs, can never overflow.
package stake

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Bits is the width of a valid stake amount.
const Bits = 128

var (
	// ErrMissing is returned when a stake amount is absent from the input.
	ErrMissing = errors.New("missing stake")
	// ErrNegative is returned for amounts below zero.
	ErrNegative = errors.New("negative stake")
	// ErrOverflow is returned when an amount or a sum leaves the 128-bit range.
	ErrOverflow = errors.New("stake exceeds 128 bits")
	// ErrMalformed is returned when a decimal amount cannot be parsed.
	ErrMalformed = errors.New("malformed stake")
)

// FromBig converts an arbitrary-precision amount into a stake value.
func FromBig(b *big.Int) (*uint256.Int, error) {
	if b == nil {
		return nil, ErrMissing
	}
	if b.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "stake %s", b)
	}
	if b.BitLen() > Bits {
		return nil, errors.Wrapf(ErrOverflow, "stake %s", b)
	}
	v, _ := uint256.FromBig(b)
	return v, nil
}

// Parse reads a base-10 stake amount such as "1000000000000000000000000".
func Parse(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "%q", s)
	}
	return FromBig(b)
}

// Fits reports whether v lies in the stake range.
func Fits(v *uint256.Int) bool {
	return v.BitLen() <= Bits
}

// Add returns x+y, failing if the sum leaves the stake range.
func Add(x, y *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow || !Fits(sum) {
		return nil, errors.Wrapf(ErrOverflow, "%s + %s", Dec(x), Dec(y))
	}
	return sum, nil
}

// Dec formats v in base 10. uint256.Int.String prints hex, which is not what
// operators expect to see next to account balances.
func Dec(v *uint256.Int) string {
	return v.ToBig().String()
}
