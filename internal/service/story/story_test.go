package story

import (
	"context"
	"errors"
	"testing"

	"house_fund/internal/ledger"
	"house_fund/internal/model"
)

func next(id int) *int { return &id }

type storyConfig struct{}

func (storyConfig) Scenes() []model.StoryScene {
	return []model.StoryScene{
		{ID: 0, Trigger: 0, Speaker: "Grandma Elsie", Action: "Seed money given", Next: next(1)},
		{ID: 1, Trigger: 0, Speaker: "You", Action: "Game Start"},
		{ID: 2, Trigger: 500, Speaker: "Huxley (OmniCorp)", Action: "Pressure increased", Next: next(3)},
		{ID: 3, Trigger: 500, Speaker: "Grandma Elsie", Action: "Elsie defiant"},
		{ID: 4, Trigger: 2500, Speaker: "Grandma Elsie", Action: "Warning"},
		{ID: 5, Trigger: 7500, Speaker: "Huxley (OmniCorp)", Action: "Final Escalation", Next: next(6)},
		{ID: 6, Trigger: 7500, Speaker: "Grandma Elsie", Action: "High Stakes"},
		{ID: 7, Trigger: 10000, Speaker: "Grandma Elsie", Action: "VICTORY"},
	}
}

func (storyConfig) Threats() []model.ThreatLevel {
	return []model.ThreatLevel{
		{Below: 2, Text: "Surveyors spotted at property."},
		{Below: 4, Text: "Construction noise is loud."},
		{Text: "Bulldozers are idling!"},
	}
}

func advance(t *testing.T, s *serv) model.StoryView {
	t.Helper()
	v, err := s.Advance(context.Background())
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	return *v
}

// TestOpeningChain сцена 0 видна сразу, продолжение 1 показывается без изменения баланса
func TestOpeningChain(t *testing.T) {
	l := ledger.New(400, 10000)
	s := NewStoryService(storyConfig{}, l).(*serv)

	v := s.View()
	if v.Scene == nil || v.Scene.ID != 0 || v.Progress != 0 {
		t.Fatalf("expected scene 0 at start, got %+v", v)
	}
	v = advance(t, s)
	if v.Scene == nil || v.Scene.ID != 1 || v.Progress != 1 {
		t.Fatalf("expected scene 1 after advance, got %+v", v)
	}
	v = advance(t, s)
	if v.Scene != nil || v.Progress != 2 {
		t.Fatalf("expected no scene at progress 2 with balance 400, got %+v", v)
	}

	_ = l.Credit(100)
	v = s.View()
	if v.Scene == nil || v.Scene.ID != 2 {
		t.Fatalf("expected scene 2 at balance 500, got %+v", v)
	}
}

// TestDueOnAdvance порог уже достигнут: следующая сцена показывается сразу после закрытия
func TestDueOnAdvance(t *testing.T) {
	l := ledger.New(500, 10000)
	s := NewStoryService(storyConfig{}, l).(*serv)
	advance(t, s)
	v := advance(t, s)
	if v.Scene == nil || v.Scene.ID != 2 {
		t.Fatalf("expected scene 2 due immediately, got %+v", v)
	}
}

// TestOneSceneAtATime скачок баланса не пропускает сцены
func TestOneSceneAtATime(t *testing.T) {
	l := ledger.New(400, 10000)
	s := NewStoryService(storyConfig{}, l).(*serv)
	advance(t, s)
	advance(t, s)

	_ = l.Credit(9600)
	want := []int{2, 3, 4, 5, 6, 7}
	for _, id := range want {
		v := s.View()
		if v.Scene == nil || v.Scene.ID != id {
			t.Fatalf("expected scene %d, got %+v", id, v)
		}
		advance(t, s)
	}
	v := s.View()
	if v.Scene != nil || v.Progress != 8 {
		t.Fatalf("expected script finished at progress 8, got %+v", v)
	}
}

// TestProgressNeverRegresses проигрыш не возвращает сюжет назад и не снимает текущую сцену
func TestProgressNeverRegresses(t *testing.T) {
	l := ledger.New(500, 10000)
	s := NewStoryService(storyConfig{}, l).(*serv)
	advance(t, s)
	advance(t, s)

	_ = l.Debit(450)
	v := s.View()
	if v.Scene == nil || v.Scene.ID != 2 || v.Progress != 2 {
		t.Fatalf("expected scene 2 kept, got %+v", v)
	}
	v = advance(t, s)
	if v.Progress != 3 || v.Scene != nil {
		t.Fatalf("expected progress 3 without scene at balance 50, got %+v", v)
	}
	_ = l.Debit(50)
	if s.View().Progress != 3 {
		t.Fatalf("progress regressed")
	}
}

// TestAdvanceWithoutScene закрыть нечего
func TestAdvanceWithoutScene(t *testing.T) {
	l := ledger.New(400, 10000)
	s := NewStoryService(storyConfig{}, l).(*serv)
	advance(t, s)
	advance(t, s)
	if s.CanAdvance() {
		t.Fatalf("expected CanAdvance false")
	}
	if _, err := s.Advance(context.Background()); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

// TestDismissResume скрытие сцены не меняет прогресс
func TestDismissResume(t *testing.T) {
	l := ledger.New(500, 10000)
	s := NewStoryService(storyConfig{}, l).(*serv)
	v := s.Dismiss()
	if !v.Hidden || v.Scene == nil || v.Progress != 0 {
		t.Fatalf("expected hidden scene 0, got %+v", v)
	}
	v = s.Resume()
	if v.Hidden || v.Scene.ID != 0 {
		t.Fatalf("expected visible scene 0, got %+v", v)
	}
	s.Dismiss()
	if v := advance(t, s); v.Hidden || v.Scene.ID != 1 {
		t.Fatalf("expected visible scene 1 after advance, got %+v", v)
	}
}

// TestThreat текст угрозы по прогрессу
func TestThreat(t *testing.T) {
	levels := storyConfig{}.Threats()
	tests := []struct {
		progress int
		want     string
	}{
		{0, "Surveyors spotted at property."},
		{1, "Surveyors spotted at property."},
		{2, "Construction noise is loud."},
		{3, "Construction noise is loud."},
		{4, "Bulldozers are idling!"},
		{8, "Bulldozers are idling!"},
	}
	for _, tt := range tests {
		if got := threat(levels, tt.progress); got != tt.want {
			t.Fatalf("threat(%d): expected %q, got %q", tt.progress, tt.want, got)
		}
	}
}
