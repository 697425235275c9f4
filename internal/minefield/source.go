package minefield

import (
	"hash/maphash"
	"math/rand/v2"
)

// IntSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewRandomSeed returns an unpredictable seed for [NewSource].
func NewRandomSeed() uint64 {
	return new(maphash.Hash).Sum64()
}
