package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand, used when dealing real hands
type Crypto struct{}

// Intn returns a uniformly distributed number in [0, n)
// It panics if n <= 0, matching math/rand
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
