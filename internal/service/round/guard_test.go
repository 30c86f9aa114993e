package round

import (
	"context"
	"errors"
	"testing"

	"house_fund/internal/model"

	"github.com/google/uuid"
)

// TestGuardLifecycle Idle -> Committed -> Resolved -> Committed
func TestGuardLifecycle(t *testing.T) {
	var g Guard
	if g.Phase() != Idle {
		t.Fatalf("expected idle, got %s", g.Phase())
	}
	if err := g.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := g.Commit(); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double commit, got %v", err)
	}
	if err := g.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := g.Resolve(); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double resolve, got %v", err)
	}
	if !g.CanCommit() {
		t.Fatalf("expected new round allowed after resolve")
	}
}

type journalStub struct {
	rounds []model.Round
	err    error
}

func (j *journalStub) SaveRound(_ context.Context, rd model.Round) error {
	j.rounds = append(j.rounds, rd)
	return j.err
}

func (j *journalStub) ListRounds(_ context.Context, _ int) ([]model.Round, error) {
	return j.rounds, nil
}

type statsStub struct {
	stake, payout int
}

func (s *statsStub) UpdateState(_ model.Game, stake, payout int) {
	s.stake += stake
	s.payout += payout
}

func (s *statsStub) Stats() []model.GameStats { return nil }

// TestRecorderRecord раунд получает ID и попадает в журнал и статистику
func TestRecorderRecord(t *testing.T) {
	j := &journalStub{err: errors.New("db down")}
	s := &statsStub{}
	r := NewRecorder(j, s)

	rd := r.Record(context.Background(), model.Round{Game: model.GameSlots, Stake: 10, Payout: 50, Outcome: "triple"})
	if rd.ID == uuid.Nil {
		t.Fatalf("expected round id")
	}
	if rd.SettledAt.IsZero() {
		t.Fatalf("expected settled time")
	}
	if len(j.rounds) != 1 || j.rounds[0].ID != rd.ID {
		t.Fatalf("expected round in journal, got %v", j.rounds)
	}
	if s.stake != 10 || s.payout != 50 {
		t.Fatalf("expected stats 10/50, got %d/%d", s.stake, s.payout)
	}
}

// TestNilRecorder nil-рекордер не паникует
func TestNilRecorder(t *testing.T) {
	var r *Recorder
	rd := r.Record(context.Background(), model.Round{Game: model.GameHorses})
	if rd.ID == uuid.Nil {
		t.Fatalf("expected round id")
	}
}
