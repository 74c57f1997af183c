// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"go-haunted-house/internal/types"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// PointInRadius returns a uniformly distributed point on the floor (XZ plane)
// within radius of center. Height is kept.
func (s *PRNGService) PointInRadius(center types.Vec3, radius float64) types.Vec3 {
	angle := s.Range(0, 2*math.Pi)
	dist := radius * math.Sqrt(s.rng.Float64())
	return types.Vec3{
		X: center.X + math.Cos(angle)*dist,
		Y: center.Y,
		Z: center.Z + math.Sin(angle)*dist,
	}
}
