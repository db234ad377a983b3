package random

import (
	crypto_rand "crypto/rand"
	"math/big"
	"math/rand"

	"github.com/db47h/rand64/v3/xoshiro"
)

// NewSeed returns a cryptographically random seed value.
func NewSeed() int64 {
	const MaxUint = ^uint(0)
	const MaxInt = int(MaxUint >> 1)
	nBig, err := crypto_rand.Int(crypto_rand.Reader, big.NewInt(int64(MaxInt)))
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}

	return nBig.Int64()
}

// NewShuffleSource returns a crypto-seeded xoshiro256** source for deck
// shuffles.
func NewShuffleSource() rand.Source {
	src := &xoshiro.Rng256SS{}
	src.Seed(NewSeed())
	return src
}
