package stats_repo

import (
	"math"
	"testing"

	"house_fund/internal/model"
)

// TestUpdateState RTP считается по сумме ставок и выплат
func TestUpdateState(t *testing.T) {
	r := NewStatsRepository()
	r.UpdateState(model.GameSlots, 100, 0)
	r.UpdateState(model.GameSlots, 100, 150)
	r.UpdateState(model.GameRoulette, 50, 100)

	st, ok := r.GameState(model.GameSlots)
	if !ok {
		t.Fatalf("expected slots state")
	}
	if st.TotalRounds != 2 {
		t.Fatalf("expected 2 rounds, got %d", st.TotalRounds)
	}
	if math.Abs(st.CurrentRTP-75) > 1e-9 {
		t.Fatalf("expected RTP 75, got %v", st.CurrentRTP)
	}

	stats := r.Stats()
	if len(stats) != 2 || stats[0].Game != model.GameRoulette || stats[1].Game != model.GameSlots {
		t.Fatalf("expected roulette and slots sorted, got %v", stats)
	}
	if stats[0].RTP != 200 {
		t.Fatalf("expected roulette RTP 200, got %v", stats[0].RTP)
	}
}

// TestWindow окно хранит только последние раунды
func TestWindow(t *testing.T) {
	r := NewStatsRepository()
	for i := 0; i < windowSize; i++ {
		r.UpdateState(model.GameHorses, 10, 0)
	}
	for i := 0; i < windowSize; i++ {
		r.UpdateState(model.GameHorses, 10, 20)
	}
	st, _ := r.GameState(model.GameHorses)
	if len(st.RoundWindow) != windowSize {
		t.Fatalf("expected window %d, got %d", windowSize, len(st.RoundWindow))
	}
	if st.WindowRTP != 200 {
		t.Fatalf("expected window RTP 200, got %v", st.WindowRTP)
	}
	if st.CurrentRTP != 100 {
		t.Fatalf("expected total RTP 100, got %v", st.CurrentRTP)
	}
}
