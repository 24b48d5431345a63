// RNG utilities shared by the optimizers.
//
// Both optimizers draw every random decision (seed selection, population
// initialisation, tournament sampling, crossover, mutation) from a Rand
// passed in by the caller, so a fixed seed reproduces a run exactly.
//
// Concurrency:
//   - *math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use DeriveRand to give each optimisation phase its own stream.

package partition

import (
	"math/rand"
	"time"
)

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// Rand is the random source the optimizers consume. *math/rand.Rand
// satisfies it.
type Rand interface {
	Int63() int64
	Intn(n int) int
	Float64() float64
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic source.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// SystemRand returns a time-seeded source for non-reproducible runs.
func SystemRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring stream ids give uncorrelated children.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once; a nil base uses DefaultSeed as
// the parent.
//
// Complexity: O(1).
func DeriveRand(base Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// OrDefault returns r, or a DefaultSeed source when r is nil.
func OrDefault(r Rand) Rand {
	if r == nil {
		return NewRand(0)
	}

	return r
}
