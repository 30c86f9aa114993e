package scrapyard

import (
	"context"
	"fmt"

	"house_fund/internal/model"
	"house_fund/internal/service/round"
)

// CanStrike Деталь есть на машине и еще держится
func (s *serv) CanStrike(partID string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.state != model.ScrapYardActive {
		return false
	}
	i, ok := s.part(partID)
	return ok && s.parts[i].Health > 0
}

// Strike Удар по детали. Когда все детали сняты, начисляется плата за работу, один раз
func (s *serv) Strike(ctx context.Context, partID string) (*model.ScrapYardView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.ScrapYardActive {
		round.Reject(model.GameScrapYard, "strike", model.ErrInvalidTransition)
		return nil, fmt.Errorf("strike %q: %w", partID, model.ErrInvalidTransition)
	}
	i, ok := s.part(partID)
	if !ok {
		round.Reject(model.GameScrapYard, "strike", model.ErrUnknownPart)
		return nil, fmt.Errorf("strike %q: %w", partID, model.ErrUnknownPart)
	}

	s.delta = 0
	// Снятая деталь: удар ничего не меняет
	if s.parts[i].Health == 0 {
		v := s.view()
		return &v, nil
	}
	s.parts[i].Health--

	for _, p := range s.parts {
		if p.Health > 0 {
			v := s.view()
			return &v, nil
		}
	}

	s.state = model.ScrapYardDone
	if err := s.wallet.Credit(s.reward); err != nil {
		return nil, fmt.Errorf("scrapyard credit: %w", err)
	}
	s.delta = s.reward
	s.recorder.Record(ctx, model.Round{
		Game:    model.GameScrapYard,
		Payout:  s.reward,
		Outcome: "job done",
		Balance: s.wallet.Balance(),
	})

	v := s.view()
	return &v, nil
}

// Restart Новая машина после завершенной работы
func (s *serv) Restart(_ context.Context) (*model.ScrapYardView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.ScrapYardDone {
		round.Reject(model.GameScrapYard, "restart", model.ErrInvalidTransition)
		return nil, fmt.Errorf("restart job: %w", model.ErrInvalidTransition)
	}
	s.reset()
	v := s.view()
	return &v, nil
}
