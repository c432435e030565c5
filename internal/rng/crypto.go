package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Crypto generates seeds from the crypto/rand library
type Crypto struct{}

// Seed returns a seed in [1, math.MaxInt64]
func (c Crypto) Seed() int64 {
	b, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		panic(err)
	}

	return b.Int64() + 1
}
