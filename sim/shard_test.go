package sim

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/mooori/sim-validator-assignment/inter/stake"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

func TestNewShard(t *testing.T) {
	require := require.New(t)
	cfg := newMockConfig(true)
	_, validators := parseTestRecords(t, 100)

	// validator_0 is honest, validator_1 malicious with a partial seat of 10.
	shard, err := NewShard(cfg, validators,
		[]Seat{{Validator: 0}, {Validator: 1}},
		[]PartialSeat{{Validator: 1, Weight: uint256.NewInt(10)}, {Validator: 2, Weight: uint256.NewInt(90)}},
	)
	require.NoError(err)
	require.Equal(uint64(300), shard.Stake.Uint64())
	require.Equal(uint64(110), shard.MaliciousStake.Uint64())
	require.True(shard.IsCorrupted(cfg))
}

func TestNewShardSeatCount(t *testing.T) {
	cfg := newMockConfig(false)
	_, validators := parseTestRecords(t, 100)

	for _, seats := range [][]Seat{
		nil,
		{{Validator: 0}},
		{{Validator: 0}, {Validator: 0}, {Validator: 0}},
	} {
		_, err := NewShard(cfg, validators, seats, nil)
		require.ErrorIs(t, err, ErrShardSeatCount)
	}
}

func TestShardIsCorrupted(t *testing.T) {
	records := []validatordata.Record{
		record("honest", 1000, false),
		record("malicious", 1000, true),
	}
	_, validators, err := ParseRawValidators(uint256.NewInt(100), records)
	require.NoError(t, err)
	honest, malicious := Seat{Validator: 0}, Seat{Validator: 1}

	for name, tc := range map[string]struct {
		seatsPerShard uint64
		seats         []Seat
		partialSeats  []PartialSeat
		corrupted     bool
	}{
		"one malicious of two": {
			seatsPerShard: 2,
			seats:         []Seat{malicious, honest},
			corrupted:     true,
		},
		"all honest": {
			seatsPerShard: 2,
			seats:         []Seat{honest, honest},
		},
		"exactly at threshold": {
			seatsPerShard: 3,
			seats:         []Seat{malicious, honest, honest},
		},
		"one unit above threshold": {
			seatsPerShard: 3,
			seats:         []Seat{malicious, honest, honest},
			partialSeats:  []PartialSeat{{Validator: 1, Weight: uint256.NewInt(1)}},
			corrupted:     true,
		},
		"one unit below threshold": {
			seatsPerShard: 3,
			seats:         []Seat{malicious, honest, honest},
			partialSeats:  []PartialSeat{{Validator: 0, Weight: uint256.NewInt(1)}},
		},
		"no stake": {
			seatsPerShard: 0,
		},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := newMockConfig(true)
			cfg.SeatsPerShard = tc.seatsPerShard
			shard, err := NewShard(cfg, validators, tc.seats, tc.partialSeats)
			require.NoError(t, err)
			require.Equal(t, tc.corrupted, shard.IsCorrupted(cfg))
		})
	}
}

func TestShardIsCorruptedWideStake(t *testing.T) {
	require := require.New(t)
	// 10^30 per seat, as on networks with 24 decimal tokens.
	stakePerSeat, err := stake.Parse("1000000000000000000000000000000")
	require.NoError(err)
	wide := new(uint256.Int).Mul(stakePerSeat, uint256.NewInt(10))

	records := []validatordata.Record{
		{AccountID: "honest", Stake: wide.ToBig()},
		{AccountID: "malicious", Stake: wide.ToBig(), IsMalicious: true},
	}
	_, validators, err := ParseRawValidators(stakePerSeat, records)
	require.NoError(err)

	cfg := newMockConfig(false)
	cfg.StakePerSeat = stakePerSeat
	cfg.SeatsPerShard = 3
	cfg.MaxMaliciousStakePerShard = stake.NewRatio(1, 3)

	shard, err := NewShard(cfg, validators, []Seat{{Validator: 1}, {Validator: 0}, {Validator: 0}}, nil)
	require.NoError(err)
	require.False(shard.IsCorrupted(cfg))

	shard, err = NewShard(cfg, validators, []Seat{{Validator: 1}, {Validator: 1}, {Validator: 0}}, nil)
	require.NoError(err)
	require.True(shard.IsCorrupted(cfg))
}
