package sim

import "github.com/mooori/sim-validator-assignment/utils/rand"

// Shuffle permutes items in place with a Fisher-Yates shuffle drawn from rng.
// Every permutation is equally likely.
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
