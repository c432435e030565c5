package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Seed(t *testing.T) {
	a := assert.New(t)

	var c Crypto
	seen := make(map[int64]bool)
	for i := 0; i < 25; i++ {
		seed := c.Seed()
		a.Greater(seed, int64(0))
		seen[seed] = true
	}

	// collisions over 25 draws from [1, MaxInt64] would indicate a
	// broken generator
	a.Equal(25, len(seen))
}
