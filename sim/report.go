package sim

import "math/big"

// Report summarizes a finished run.
type Report struct {
	Blocks           uint64
	ShardsPerBlock   uint64
	CorruptedShards  uint64
	ShardEvaluations uint64
}

// CorruptionRatio returns CorruptedShards / ShardEvaluations, the empirical
// per-shard corruption probability. It is zero for an empty run.
func (r Report) CorruptionRatio() *big.Rat {
	if r.ShardEvaluations == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(
		new(big.Int).SetUint64(r.CorruptedShards),
		new(big.Int).SetUint64(r.ShardEvaluations),
	)
}
