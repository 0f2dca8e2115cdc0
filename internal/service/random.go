package service

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// NewRand returns a generator seeded from the clock.
// A *rand.Rand is not safe for concurrent use, build one per quiz.
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32|now<<32))
}

// NewSeededRand returns a generator that always yields the same quiz for the same seed.
func NewSeededRand(seed string) *rand.Rand {
	h := sha256.Sum256([]byte("glossary-quiz|" + seed))
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(h[:8]),
		binary.LittleEndian.Uint64(h[8:16]),
	))
}
