package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	var gen Generator = Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[gen.Intn(4)] = true
	}

	a.Len(found, 4)
	a.False(found[4])
	a.Equal(0, gen.Intn(1))
	a.Panics(func() {
		gen.Intn(0)
	})
}
