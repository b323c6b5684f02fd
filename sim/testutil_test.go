package sim

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/mooori/sim-validator-assignment/inter/stake"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

func newMockConfig(includePartialSeats bool) *Config {
	return &Config{
		NumBlocks:                 1_000,
		NumShards:                 4,
		SeatsPerShard:             2,
		StakePerSeat:              uint256.NewInt(100),
		MaxMaliciousStakePerShard: stake.NewRatio(1, 3),
		IncludePartialSeats:       includePartialSeats,
		HeartbeatInterval:         DefaultHeartbeatInterval,
	}
}

func record(account string, amount int64, malicious bool) validatordata.Record {
	return validatordata.Record{AccountID: account, Stake: big.NewInt(amount), IsMalicious: malicious}
}

// newTestRecords covers whole seats, seats with a remainder, stake below one
// seat and enough single-seat validators to fill the mock config.
func newTestRecords() []validatordata.Record {
	records := []validatordata.Record{
		record("validator_0", 500, false),
		record("validator_1", 310, true),
		record("validator_2", 90, false),
		record("validator_3", 100, true),
	}
	for i := 4; i < 12; i++ {
		records = append(records, record("validator_"+big.NewInt(int64(i)).String(), 100, false))
	}
	return records
}

func parseTestRecords(t *testing.T, stakePerSeat uint64) (PopulationStats, Validators) {
	stats, validators, err := ParseRawValidators(uint256.NewInt(stakePerSeat), newTestRecords())
	require.NoError(t, err)
	return stats, validators
}
