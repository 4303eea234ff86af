// internal/utils/math.go
package utils

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
