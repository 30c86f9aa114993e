package random

import "testing"

// TestNewDeterministic одинаковый сид дает одинаковую последовательность
func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		x, y := a.Uniform(), b.Uniform()
		if x != y {
			t.Fatalf("draw %d: expected %v, got %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
	}
}

// TestScriptedWraps значения выдаются по порядку и по кругу
func TestScriptedWraps(t *testing.T) {
	s := NewScripted(0.1, 0.5)
	want := []float64{0.1, 0.5, 0.1}
	for i, w := range want {
		if got := s.Uniform(); got != w {
			t.Fatalf("draw %d: expected %v, got %v", i, w, got)
		}
	}
	if s.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", s.Draws())
	}
}

// TestIndexBounds Index не выходит за [0, n)
func TestIndexBounds(t *testing.T) {
	tests := []struct {
		u    float64
		n    int
		want int
	}{
		{0, 6, 0},
		{0.5, 6, 3},
		{0.9999999, 6, 5},
		{1, 6, 5},
		{0.3, 0, 0},
	}
	for _, tt := range tests {
		if got := Index(NewScripted(tt.u), tt.n); got != tt.want {
			t.Fatalf("Index(%v, %d): expected %d, got %d", tt.u, tt.n, tt.want, got)
		}
	}
}

// TestNewSeed генерация сида без ошибок
func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("new seed: %v", err)
	}
}
