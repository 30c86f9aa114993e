package random

import "sync"

// Scripted источник с заранее заданной последовательностью значений, по кругу
type Scripted struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewScripted значения выдаются по порядку. Пустой список всегда дает 0
func NewScripted(values ...float64) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) Uniform() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws сколько значений уже выдано
func (s *Scripted) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
