// Package random источник равномерных случайных чисел для всех игр.
// Игры не обращаются к math/rand напрямую, только через Source.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source возвращает равномерно распределенные значения в [0, 1)
type Source interface {
	Uniform() float64
}

type seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New детерминированный источник для заданного сида
func New(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// NewFromEntropy источник с сидом из crypto/rand. Сид возвращается для логов
func NewFromEntropy() (Source, int64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return New(seed), seed, nil
}

func (s *seeded) Uniform() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Index отображает одно значение источника на индекс в [0, n)
func Index(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Uniform() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
