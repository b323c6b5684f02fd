package sim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	simulatedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sim_blocks_total",
		Help: "Number of simulated blocks",
	})
	evaluatedShards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sim_shards_evaluated_total",
		Help: "Number of shard evaluations across all simulated blocks",
	})
	corruptedShards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sim_shards_corrupted_total",
		Help: "Number of shard evaluations whose malicious stake ratio exceeded the threshold",
	})
)
