package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRange(t *testing.T) {
	src := NewCrypto()
	for i := 0; i < 2000; i++ {
		v := src.Range(4, 10)
		assert.GreaterOrEqual(t, v, 4.0)
		assert.Less(t, v, 10.0)
	}
}

func TestInvertedBoundsAreNotSwapped(t *testing.T) {
	src := NewSeeded(1, 2)
	for i := 0; i < 2000; i++ {
		v := src.Range(1, 0.5)
		assert.Greater(t, v, 0.5)
		assert.LessOrEqual(t, v, 1.0)
	}

	assert.Equal(t, 1.0, Fixed(0).Range(1, 0.5))
	assert.Equal(t, 0.75, Fixed(0.5).Range(1, 0.5))
}

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(7, 11)
	b := NewSeeded(7, 11)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Range(-0.5, 0.5), b.Range(-0.5, 0.5))
	}
}
