package sim

import (
	"fmt"
	"math/big"

	"github.com/mooori/sim-validator-assignment/validatordata"
)

// Mock population used when no validator data file is given. It mirrors the
// uniform population of Table 4 in
// https://www.montrealblockchainlab.com/New%20Mathematical%20Model.pdf with one
// third of validators malicious (class B of Table 1).
const (
	MockValidators = 4000
	MockStake      = 1
	MockMalicious  = MockValidators / 3
)

// NewMockValidators returns n records named validator_0 ... validator_{n-1}
// each holding stakePerValidator. The first numMalicious are malicious.
func NewMockValidators(n int, stakePerValidator uint64, numMalicious int) []validatordata.Record {
	records := make([]validatordata.Record, n)
	for i := range records {
		records[i] = validatordata.Record{
			AccountID:   fmt.Sprintf("validator_%d", i),
			Stake:       new(big.Int).SetUint64(stakePerValidator),
			IsMalicious: i < numMalicious,
		}
	}
	return records
}
