// Package randutil derives reproducible random sources for deck shuffling.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// NewSource returns a PCG source seeded deterministically from seed. Every
// shuffle in a game draws from one source so that a seed replays the whole
// multiverse.
func NewSource(seed int64) *rand.PCG {
	u := uint64(seed)
	return rand.NewPCG(mix(u), mix(u+goldenRatio64))
}

// New returns a *rand.Rand over NewSource(seed).
func New(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Seed returns seed unchanged unless it is zero, in which case a seed is
// derived from now. Callers log the result so a session can be replayed.
func Seed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	if s := now.UnixNano(); s != 0 {
		return s
	}
	return 1
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
