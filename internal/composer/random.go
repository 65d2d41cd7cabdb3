package composer

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyList is returned when a random pick is requested from an empty list.
var ErrEmptyList = errors.New("cannot pick from an empty list")

// Rand is the randomness source used for phrase selection. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewSeededRand returns a reproducible source for the given seed.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickRandom returns one element of list chosen uniformly with r.
func PickRandom[T any](r Rand, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, ErrEmptyList
	}
	if r == nil {
		r = globalRand{}
	}
	return list[r.IntN(len(list))], nil
}
