// internal/defs/level.go
package defs

// WallDefinition is a static obstacle: center and full size in world units.
type WallDefinition struct {
	X      float64 `json:"x" mapstructure:"x"`
	Y      float64 `json:"y" mapstructure:"y"`
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// DefaultWalls is the housing-complex arena: two houses and some debris.
func DefaultWalls() []WallDefinition {
	return []WallDefinition{
		{X: -200, Y: 200, Width: 100, Height: 80},
		{X: 200, Y: -150, Width: 120, Height: 100},
		{X: 0, Y: 50, Width: 40, Height: 40},
		{X: 50, Y: -50, Width: 40, Height: 40},
	}
}
