package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsAABB(t *testing.T) {
	tests := []struct {
		name           string
		centerA, sizeA Vec2
		centerB, sizeB Vec2
		want           bool
	}{
		{"same box", Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 0}, Vec2{10, 10}, true},
		{"partial overlap", Vec2{0, 0}, Vec2{10, 10}, Vec2{8, 8}, Vec2{10, 10}, true},
		{"touching on x", Vec2{0, 0}, Vec2{10, 10}, Vec2{10, 0}, Vec2{10, 10}, false},
		{"touching on y", Vec2{0, 0}, Vec2{10, 10}, Vec2{0, -10}, Vec2{10, 10}, false},
		{"overlap on x only", Vec2{0, 0}, Vec2{10, 10}, Vec2{5, 40}, Vec2{10, 10}, false},
		{"contained", Vec2{0, 0}, Vec2{100, 100}, Vec2{3, 3}, Vec2{2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapsAABB(tt.centerA, tt.sizeA, tt.centerB, tt.sizeB))
			assert.Equal(t, tt.want, OverlapsAABB(tt.centerB, tt.sizeB, tt.centerA, tt.sizeA), "must be symmetric")
		})
	}
}

func TestPointInAABB(t *testing.T) {
	center, size := Vec2{0, 0}, Vec2{40, 40}

	assert.True(t, PointInAABB(Vec2{0, 0}, center, size))
	assert.True(t, PointInAABB(Vec2{19.9, -19.9}, center, size))
	assert.False(t, PointInAABB(Vec2{20, 0}, center, size), "edge is outside")
	assert.False(t, PointInAABB(Vec2{0, -20}, center, size), "edge is outside")
	assert.False(t, PointInAABB(Vec2{50, 50}, center, size))
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(Vec2{0, 0}, Vec2{3, 4}, 5.1))
	assert.False(t, WithinRadius(Vec2{0, 0}, Vec2{3, 4}, 5), "distance equal to radius is not a hit")
	assert.False(t, WithinRadius(Vec2{0, 0}, Vec2{30, 40}, 32))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())

	n := Vec2{1, 1}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.InDelta(t, math.Sqrt2/2, n.X, 1e-9)
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, v.Angle(), 1e-9)
}
