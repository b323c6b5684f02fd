package launcher

import (
	"bytes"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/mooori/sim-validator-assignment/validatordata"
)

func writeTestValidators(t *testing.T) string {
	t.Helper()
	records := []validatordata.Record{
		{AccountID: "validator_0", Stake: big.NewInt(500)},
		{AccountID: "validator_1", Stake: big.NewInt(310), IsMalicious: true},
		{AccountID: "validator_2", Stake: big.NewInt(90)},
		{AccountID: "validator_3", Stake: big.NewInt(100), IsMalicious: true},
	}
	for i := 4; i < 12; i++ {
		records = append(records, validatordata.Record{AccountID: "validator_" + big.NewInt(int64(i)).String(), Stake: big.NewInt(100)})
	}
	path := filepath.Join(t.TempDir(), "validators.json")
	require.NoError(t, validatordata.WriteFile(path, records))
	return path
}

func TestWriteStats(t *testing.T) {
	require := require.New(t)
	path := writeTestValidators(t)

	var out bytes.Buffer
	require.NoError(writeStats(&out, StatsConfig{
		ValidatorData: path,
		StakePerSeat:  uint256.NewInt(100),
	}))
	for _, line := range []string{
		"num_validators\t12\n",
		"stake\t1,800\n",
		"malicious_stake\t410\n",
		"malicious_stake/stake\t0.2278\n",
		"num_seats\t17\n",
		"num_malicious_seats\t4\n",
		"malicious_seats/seats\t0.2353\n",
		"num_seat_holders\t11\n",
		"seat_quorum\t12\n",
	} {
		require.Contains(out.String(), line)
	}
	require.NotContains(out.String(), "partial")
}

func TestWriteStatsPartialSeats(t *testing.T) {
	require := require.New(t)
	path := writeTestValidators(t)

	var out bytes.Buffer
	require.NoError(writeStats(&out, StatsConfig{
		ValidatorData:       path,
		StakePerSeat:        uint256.NewInt(100),
		IncludePartialSeats: true,
	}))
	for _, line := range []string{
		"num_partial_seats\t2\n",
		"num_malicious_partial_seats\t1\n",
		"equivalent_num_seats\t1\n",
		"equivalent_num_malicious_seats\t0\n",
	} {
		require.Contains(out.String(), line)
	}
}

func TestWriteStatsErrors(t *testing.T) {
	var out bytes.Buffer
	err := writeStats(&out, StatsConfig{
		ValidatorData: filepath.Join(t.TempDir(), "missing.json"),
		StakePerSeat:  uint256.NewInt(100),
	})
	require.Error(t, err)

	err = writeStats(&out, StatsConfig{
		ValidatorData: writeTestValidators(t),
		StakePerSeat:  new(uint256.Int),
	})
	require.Error(t, err)
}

// Seat counts beyond the lachesis weight range still get population stats.
func TestWriteStatsManySeats(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "validators.json")
	require.NoError(validatordata.WriteFile(path, []validatordata.Record{
		{AccountID: "validator_0", Stake: big.NewInt(1_500_000_000)},
		{AccountID: "validator_1", Stake: big.NewInt(1_500_000_000), IsMalicious: true},
	}))

	var out bytes.Buffer
	require.NoError(writeStats(&out, StatsConfig{
		ValidatorData: path,
		StakePerSeat:  uint256.NewInt(1),
	}))
	for _, line := range []string{
		"num_validators\t2\n",
		"num_seats\t3,000,000,000\n",
		"num_malicious_seats\t1,500,000,000\n",
		"malicious_seats/seats\t0.5000\n",
	} {
		require.Contains(out.String(), line)
	}
	require.NotContains(out.String(), "seat_quorum")
}
