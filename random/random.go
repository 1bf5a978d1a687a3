package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces uniform floats. Range returns min + t*(max-min) with t in [0, 1).
// The order of min and max is not enforced, so Range(1, 0.5) yields values in (0.5, 1].
type Source interface {
	Range(min, max float64) float64
}

// Crypto draws from the operating system's cryptographic randomness
type Crypto struct{}

// NewCrypto returns a Source backed by crypto/rand
func NewCrypto() Crypto {
	return Crypto{}
}

// Range returns a value between min and max using 32 bits of entropy
func (Crypto) Range(min, max float64) float64 {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read never returns an error on supported platforms
		panic("random: cannot read system randomness: " + err.Error())
	}
	t := float64(binary.LittleEndian.Uint32(b[:])) / (1 << 32)
	return min + t*(max-min)
}

// Seeded is a deterministic PCG source, used for reproducible runs and tests.
// It is not safe for concurrent use.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a Seeded source from two seed halves
func NewSeeded(seed1, seed2 uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Range returns a value between min and max
func (s *Seeded) Range(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// Fixed always returns the same t, which makes Range fully predictable
type Fixed float64

// Range returns min + t*(max-min)
func (f Fixed) Range(min, max float64) float64 {
	return min + float64(f)*(max-min)
}
