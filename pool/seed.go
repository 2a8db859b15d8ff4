package pool

import "time"

// seedFromTime produces the base seed each worker's PRNG stream is
// jump-ahead-derived from. A shared wall-clock seed is enough here: the
// per-worker jump-ahead (see internal/rng) is what actually guarantees
// distinct, non-overlapping subsequences, not the seed's entropy.
func seedFromTime() uint64 {
	return uint64(time.Now().UnixNano())
}
