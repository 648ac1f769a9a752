// Package cryptorand backs a math/rand generator with crypto/rand, so board
// layouts aren't reproducible from a timestamp seed.
package cryptorand

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source is a math/rand.Source that draws from the OS entropy pool. Seeding
// is a no-op.
type Source struct{}

func (Source) Int63() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) & (1<<63 - 1))
}

func (Source) Seed(int64) {}

// New returns a ready-to-use generator over a crypto-backed source.
func New() *rand.Rand {
	return rand.New(Source{})
}
