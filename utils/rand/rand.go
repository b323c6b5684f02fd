// Package rand provides the random generators behind seat shuffling.
//
// NewGenerator seeds from crypto/rand and is what simulation runs use.
// NewDeterministicGenerator takes an explicit seed so that a run (or a test)
// can be replayed exactly.
package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Rand is the generator type handed to the shuffling code.
type Rand = mrand.Rand

// NewGenerator returns a generator seeded from the operating system's entropy
// source.
func NewGenerator() *Rand {
	return mrand.New(mrand.NewSource(Seed()))
}

// NewDeterministicGenerator returns a generator that always yields the same
// sequence for the same seed.
func NewDeterministicGenerator(seed int64) *Rand {
	return mrand.New(mrand.NewSource(seed))
}

// Seed reads a fresh seed from crypto/rand. It panics if the entropy source is
// unavailable, since no meaningful simulation can run without one.
func Seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("rand: crypto source unavailable: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
