package session

import (
	"context"
	"testing"

	"house_fund/internal/ledger"
	"house_fund/internal/model"
	"house_fund/internal/repository/round_mem_repo"
	"house_fund/internal/repository/stats_repo"
	"house_fund/internal/service/story"
)

type economyConfig struct{}

func (economyConfig) SeedBalance() int  { return 500 }
func (economyConfig) Goal() int         { return 10000 }
func (economyConfig) VIPThreshold() int { return 5000 }

type storyConfig struct{}

func (storyConfig) Scenes() []model.StoryScene {
	return []model.StoryScene{{ID: 0, Trigger: 0, Speaker: "Grandma Elsie"}}
}

func (storyConfig) Threats() []model.ThreatLevel {
	return []model.ThreatLevel{{Text: "Bulldozers are idling!"}}
}

// TestSession VIP и цель считаются по балансу
func TestSession(t *testing.T) {
	l := ledger.New(500, 10000)
	st := story.NewStoryService(storyConfig{}, l)
	s := NewSessionService(economyConfig{}, l, st, round_mem_repo.NewRoundRepository(), stats_repo.NewStatsRepository())

	got := s.Session()
	if got.Balance != 500 || got.Goal != 10000 || got.VIP || got.GoalReached {
		t.Fatalf("unexpected session %+v", got)
	}
	if got.Story.Scene == nil || got.Threat != "Bulldozers are idling!" {
		t.Fatalf("expected opening scene and threat, got %+v", got)
	}

	_ = l.Credit(4500)
	if got := s.Session(); !got.VIP || got.GoalReached {
		t.Fatalf("expected VIP at 5000, got %+v", got)
	}
	_ = l.Credit(5000)
	if got := s.Session(); !got.GoalReached {
		t.Fatalf("expected goal reached at 10000, got %+v", got)
	}

	rounds, err := s.History(context.Background(), 10)
	if err != nil || len(rounds) != 0 {
		t.Fatalf("expected empty history, got %v %v", rounds, err)
	}
}
