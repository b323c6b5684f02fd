package sim

import (
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/mooori/sim-validator-assignment/inter/stake"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, newMockConfig(false).Validate())

	for name, tc := range map[string]struct {
		modify func(*Config)
		err    error
	}{
		"zero blocks": {
			modify: func(c *Config) { c.NumBlocks = 0 },
			err:    ErrInvalidConfig,
		},
		"zero shards": {
			modify: func(c *Config) { c.NumShards = 0 },
			err:    ErrInvalidConfig,
		},
		"too many shards": {
			modify: func(c *Config) { c.NumShards = 1 << 16 },
			err:    ErrInvalidConfig,
		},
		"zero heartbeat interval": {
			modify: func(c *Config) { c.HeartbeatInterval = 0 },
			err:    ErrInvalidConfig,
		},
		"nil stake per seat": {
			modify: func(c *Config) { c.StakePerSeat = nil },
			err:    ErrZeroStakePerSeat,
		},
		"zero stake per seat": {
			modify: func(c *Config) { c.StakePerSeat = new(uint256.Int) },
			err:    ErrZeroStakePerSeat,
		},
		"stake per seat above 128 bits": {
			modify: func(c *Config) { c.StakePerSeat = new(uint256.Int).Lsh(uint256.NewInt(1), stake.Bits) },
			err:    stake.ErrOverflow,
		},
		"unset threshold": {
			modify: func(c *Config) { c.MaxMaliciousStakePerShard = stake.Ratio{} },
			err:    ErrInvalidThreshold,
		},
		"zero threshold": {
			modify: func(c *Config) { c.MaxMaliciousStakePerShard = stake.NewRatio(0, 1) },
			err:    ErrInvalidThreshold,
		},
		"threshold of one": {
			modify: func(c *Config) { c.MaxMaliciousStakePerShard = stake.NewRatio(3, 3) },
			err:    ErrInvalidThreshold,
		},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := newMockConfig(false)
			tc.modify(cfg)
			require.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}
}

func TestConfigValidateReportsValues(t *testing.T) {
	cfg := newMockConfig(false)
	cfg.NumShards = 0
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "NumShards=0 violates gt=0")
}

func TestTotalSeats(t *testing.T) {
	require := require.New(t)

	seats, err := newMockConfig(false).TotalSeats()
	require.NoError(err)
	require.Equal(uint64(8), seats)

	cfg := newMockConfig(false)
	cfg.SeatsPerShard = 1 << 63
	_, err = cfg.TotalSeats()
	require.ErrorIs(err, ErrInvalidConfig)
}

func TestCollectSeatsForShard(t *testing.T) {
	require := require.New(t)
	cfg := newMockConfig(false)
	_, validators := parseTestRecords(t, 100)
	// Ordered seats keep the result deterministic.
	seats := NewOrderedSeats(validators)

	want := [][]idx.Validator{
		{0, 0},
		{0, 0},
		{0, 1},
		{1, 1},
	}
	for shardIdx, owners := range want {
		shardSeats, err := cfg.CollectSeatsForShard(uint64(shardIdx), seats)
		require.NoError(err)
		require.Len(shardSeats, len(owners))
		for i, s := range shardSeats {
			require.Equal(owners[i], s.Validator, "shard %d seat %d", shardIdx, i)
		}
	}
}

func TestCollectSeatsForShardErrors(t *testing.T) {
	require := require.New(t)
	cfg := newMockConfig(false)
	_, validators := parseTestRecords(t, 100)
	seats := NewOrderedSeats(validators)

	_, err := cfg.CollectSeatsForShard(4, seats)
	require.ErrorIs(err, ErrShardIndexOutOfRange)
	require.Contains(err.Error(), "shard index 4 is invalid for 4 shards")

	_, err = cfg.CollectSeatsForShard(0, nil)
	require.ErrorIs(err, ErrInsufficientSeats)
	require.Contains(err.Error(), "0/8")

	_, err = cfg.CollectSeatsForShard(0, seats[:7])
	require.ErrorIs(err, ErrInsufficientSeats)
}

func TestCollectPartialSeatsForShard(t *testing.T) {
	require := require.New(t)
	cfg := newMockConfig(true)
	cfg.StakePerSeat = uint256.NewInt(90)
	_, validators := parseTestRecords(t, 90)
	partialSeats, err := NewOrderedPartialSeats(validators, cfg.StakePerSeat)
	require.NoError(err)
	// validator_2 holds exactly one seat and no remainder
	require.Len(partialSeats, 11)

	want := [][]idx.Validator{
		{0, 5, 9},
		{1, 6, 10},
		{3, 7, 11},
		{4, 8},
	}
	var total int
	for shardIdx, owners := range want {
		assigned, err := cfg.CollectPartialSeatsForShard(uint64(shardIdx), partialSeats)
		require.NoError(err)
		got := make([]idx.Validator, len(assigned))
		for i, ps := range assigned {
			got[i] = ps.Validator
		}
		require.Equal(owners, got, "shard %d", shardIdx)
		total += len(assigned)
	}
	require.Equal(len(partialSeats), total)
}

func TestCollectPartialSeatsForShardErrors(t *testing.T) {
	require := require.New(t)
	cfg := newMockConfig(true)

	_, err := cfg.CollectPartialSeatsForShard(cfg.NumShards, nil)
	require.ErrorIs(err, ErrShardIndexOutOfRange)

	// Fewer partial seats than shards leaves some shards without any.
	partialSeats := []PartialSeat{{Validator: 0, Weight: uint256.NewInt(1)}}
	assigned, err := cfg.CollectPartialSeatsForShard(3, partialSeats)
	require.NoError(err)
	require.Empty(assigned)
}
