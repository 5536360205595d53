package crypto

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Source supplies uniform random integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic PCG-backed source. Not safe for concurrent use.
type SeededSource struct {
	rng *mathrand.Rand
}

// NewSeededSource returns a source that yields the same sequence for the same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform random int in [0, n).
func (s *SeededSource) IntN(n int) (int, error) {
	return s.rng.IntN(n), nil
}
