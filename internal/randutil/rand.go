// Package randutil builds the seeded random sources used for shuffling and dealing.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

// weyl is the increment separating the two PCG state words.
const weyl = 0x9e3779b97f4a7c15

// New returns the shuffle source for a deal seed. A pool shuffled from
// New(s) always produces the same catalog order, so a logged seed replays
// the deal exactly.
func New(seed int64) *rand.Rand {
	hi, lo := splitmix(uint64(seed)), splitmix(uint64(seed)+weyl)
	return rand.New(rand.NewPCG(hi, lo))
}

// Resolve returns a generator for seed together with the seed actually used.
// A zero seed is replaced by one derived from the current time so callers
// can log it and replay the same deal later.
func Resolve(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(seed), seed
}

func splitmix(z uint64) uint64 {
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}
