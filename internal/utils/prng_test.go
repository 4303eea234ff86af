package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Range(-400, 400), b.Range(-400, 400))
	}
	assert.Equal(t, int64(7), a.Seed())
}

func TestPRNGService_RangeBounds(t *testing.T) {
	p := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := p.Range(-3, 5)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.Less(t, v, 5.0)
	}
}

func TestPRNGService_ZeroSeedIsReplaced(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 0.06))
	assert.Equal(t, 0.06, Clamp(1, 0, 0.06))
	assert.Equal(t, 0.03, Clamp(0.03, 0, 0.06))
}
