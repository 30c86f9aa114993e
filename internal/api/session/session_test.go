package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "house_fund/internal/api/dto/session"
	"house_fund/internal/model"

	"github.com/google/uuid"
)

type stubService struct {
	limit int
}

func (s *stubService) Session() model.Session {
	return model.Session{Balance: 5200, Goal: 10000, VIP: true, Threat: "Construction noise is loud."}
}

func (s *stubService) History(_ context.Context, limit int) ([]model.Round, error) {
	s.limit = limit
	return []model.Round{{ID: uuid.New(), Game: model.GameSlots, Stake: 10, Payout: 20, Outcome: "triple"}}, nil
}

func (s *stubService) Stats() []model.GameStats {
	return []model.GameStats{{Game: model.GameSlots, Rounds: 1, TotalStake: 10, TotalPayout: 20, RTP: 200}}
}

func TestSession(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{}})
	rec := httptest.NewRecorder()
	h.Session(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	var body dto.SessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.VIP || body.Balance != 5200 || body.GoalReached || body.Story.Scene != nil {
		t.Fatalf("unexpected session %+v", body)
	}
}

func TestHistoryLimit(t *testing.T) {
	serv := &stubService{}
	h := NewHandler(HandlerDeps{Serv: serv})

	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	if rec.Code != http.StatusOK || serv.limit != defaultHistoryLimit {
		t.Fatalf("expected default limit, got %d (code %d)", serv.limit, rec.Code)
	}

	rec = httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/history?limit=5", nil))
	if serv.limit != 5 {
		t.Fatalf("expected limit 5, got %d", serv.limit)
	}
	var rounds []dto.Round
	if err := json.NewDecoder(rec.Body).Decode(&rounds); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Game != "slots" {
		t.Fatalf("unexpected rounds %+v", rounds)
	}

	rec = httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/history?limit=-1", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}
