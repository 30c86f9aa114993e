package roulette

import (
	"context"
	"fmt"
	"math"

	"house_fund/internal/model"
	"house_fund/internal/service/round"
)

const (
	fullTurn = 360.0
	// Колесо делает от 5 до 10 дополнительных оборотов
	minExtraTurns    = 5.0
	extraTurnsSpread = 5.0
)

// WinningIndex Индекс ячейки колеса под указателем.
// Колесо повернуто по часовой стрелке на rotation градусов, указатель неподвижен на 0°:
// сектор = floor((rotation mod 360) / 360 * 37), индекс = (37 - сектор) mod 37
func WinningIndex(rotation float64) int {
	n := len(model.Wheel)
	norm := math.Mod(rotation, fullTurn)
	if norm < 0 {
		norm += fullTurn
	}
	sector := int(norm / fullTurn * float64(n))
	if sector >= n {
		sector = n - 1
	}
	return (n - sector) % n
}

// CanSpin Спин возможен при непустом списке ставок
func (s *serv) CanSpin() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.canSpin() == nil
}

func (s *serv) canSpin() error {
	if s.state != model.RouletteAcceptingBets || !s.guard.CanCommit() {
		return model.ErrInvalidTransition
	}
	if len(s.slip) == 0 {
		return model.ErrEmptyBetSlip
	}
	return nil
}

// Spin Крутит колесо, рассчитывает все ставки и очищает список ставок
func (s *serv) Spin(ctx context.Context) (*model.RouletteView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.canSpin(); err != nil {
		round.Reject(model.GameRoulette, "spin", err)
		return nil, fmt.Errorf("roulette spin: %w", err)
	}
	// Ставки уже списаны в PlaceBet, раунд открывается спином
	if err := s.guard.Commit(); err != nil {
		return nil, err
	}
	s.state = model.RouletteSpinning

	extra := minExtraTurns + s.rng.Uniform()*extraTurnsSpread
	s.rotation += extra * fullTurn
	idx := WinningIndex(s.rotation)
	pocket := model.Wheel[idx]

	stake, payout := 0, 0
	winning := make(map[model.BetType]int)
	for t, amount := range s.slip {
		stake += amount
		if m := multiplier(t, pocket); m > 0 {
			winning[t] = amount * m
			payout += amount * m
		}
	}

	s.state = model.RouletteSettled
	if err := s.wallet.Credit(payout); err != nil {
		return nil, fmt.Errorf("roulette credit: %w", err)
	}
	if err := s.guard.Resolve(); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, model.Round{
		Game:    model.GameRoulette,
		Stake:   stake,
		Payout:  payout,
		Outcome: fmt.Sprintf("%d %s", pocket.Number, pocket.Color),
		Balance: s.wallet.Balance(),
	})

	s.last = &model.RouletteSpinResult{
		Index:    idx,
		Pocket:   pocket,
		Rotation: s.rotation,
		Stake:    stake,
		Payout:   payout,
		Winning:  winning,
	}
	s.delta = payout
	s.slip = make(map[model.BetType]int)
	s.state = model.RouletteAcceptingBets

	v := s.view()
	return &v, nil
}
