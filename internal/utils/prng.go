// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService - сидируемый генератор для точек появления зомби. Один сид
// даёт одну и ту же последовательность волн.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed, so a time-seeded session can be replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Range возвращает равномерно распределённое число в [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
