// Package pick provides the random-source capability shared by every
// component that chooses uniformly from a pool (headers, icons, styles,
// decorative phrases).
package pick

import (
	"errors"
	"math/rand/v2"
)

// ErrEmpty is returned when choosing from a pool with no elements.
var ErrEmpty = errors.New("pick: empty pool")

// Rand is the subset of *rand.Rand the pickers need. Tests pass a seeded
// source from New; production code uses Default.
type Rand interface {
	IntN(n int) int
}

// New returns a deterministic source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

// Default returns a source backed by the runtime-seeded global generator.
func Default() Rand { return global{} }

// One returns a uniformly chosen element of pool.
func One[T any](r Rand, pool []T) (T, error) {
	var zero T
	if len(pool) == 0 {
		return zero, ErrEmpty
	}
	if r == nil {
		r = Default()
	}
	return pool[r.IntN(len(pool))], nil
}
