// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — генератор с сидом, по которому сессию можно воспроизвести целиком
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт генератор с заданным сидом.
// Нулевой сид заменяется текущим временем.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает исходный сид
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает число из [0, n)
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает число из [0.0, 1.0)
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Spread возвращает число из [-width/2, width/2)
func (s *PRNGService) Spread(width float64) float64 {
	return (s.rng.Float64() - 0.5) * width
}

// Reset возвращает генератор к исходному сиду
func (s *PRNGService) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}
