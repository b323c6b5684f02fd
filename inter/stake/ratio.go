package stake

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// ErrMalformedRatio is returned when a fraction cannot be parsed.
var ErrMalformedRatio = errors.New("malformed ratio")

// Ratio is an exact, non-negative fraction whose numerator and denominator fit
// the stake range. The zero value is not usable; build one with NewRatio,
// ParseRatio or RatioFromRat.
type Ratio struct {
	num   *uint256.Int
	denom *uint256.Int
}

// NewRatio returns num/denom. It panics on a zero denominator and is meant for
// constants.
func NewRatio(num, denom uint64) Ratio {
	if denom == 0 {
		panic("stake: zero denominator")
	}
	r, _ := RatioFromRat(new(big.Rat).SetFrac(new(big.Int).SetUint64(num), new(big.Int).SetUint64(denom)))
	return r
}

// ParseRatio accepts fractions ("1/3") and decimals ("0.33").
func ParseRatio(s string) (Ratio, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Ratio{}, errors.Wrapf(ErrMalformedRatio, "%q", s)
	}
	return RatioFromRat(r)
}

// RatioFromRat converts r, which is kept in lowest terms by math/big.
func RatioFromRat(r *big.Rat) (Ratio, error) {
	if r.Sign() < 0 {
		return Ratio{}, errors.Wrapf(ErrMalformedRatio, "negative ratio %s", r.RatString())
	}
	num, err := FromBig(r.Num())
	if err != nil {
		return Ratio{}, errors.Wrapf(err, "numerator of %s", r.RatString())
	}
	denom, err := FromBig(r.Denom())
	if err != nil {
		return Ratio{}, errors.Wrapf(err, "denominator of %s", r.RatString())
	}
	return Ratio{num: num, denom: denom}, nil
}

// IsZero reports whether r is unset or equal to zero.
func (r Ratio) IsZero() bool {
	return r.num == nil || r.num.IsZero()
}

// IsProperFraction reports whether 0 < r < 1.
func (r Ratio) IsProperFraction() bool {
	return !r.IsZero() && r.num.Lt(r.denom)
}

// Rat returns r as a math/big rational.
func (r Ratio) Rat() *big.Rat {
	if r.num == nil {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(r.num.ToBig(), r.denom.ToBig())
}

func (r Ratio) String() string {
	return r.Rat().RatString()
}

// ExceededBy reports whether num/denom > r. Both arguments must fit the stake
// range and denom must be positive; the comparison is done by
// cross-multiplication so no precision is lost.
func (r Ratio) ExceededBy(num, denom *uint256.Int) bool {
	lhs := new(uint256.Int).Mul(num, r.denom)
	rhs := new(uint256.Int).Mul(r.num, denom)
	return lhs.Gt(rhs)
}
