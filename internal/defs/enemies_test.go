package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForWave(t *testing.T) {
	tests := []struct {
		wave int
		want ZombieTier
	}{
		{0, ZombieTiers[0]},
		{1, ZombieTiers[0]},
		{2, ZombieTiers[1]},
		{3, ZombieTiers[2]},
		{10, ZombieTiers[len(ZombieTiers)-1]},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForWave(tt.wave), "wave %d", tt.wave)
	}
}
