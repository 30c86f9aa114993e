package blackjack

import (
	"context"
	"fmt"

	"house_fund/internal/model"
	"house_fund/internal/service/round"
)

// CanDeal Раздача возможна между раундами при покрытой ставке
func (s *serv) CanDeal(bet int) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.canDeal(bet) == nil
}

func (s *serv) canDeal(bet int) error {
	if bet <= 0 {
		return model.ErrInvalidAmount
	}
	if s.state != model.BlackjackBetting && s.state != model.BlackjackSettled {
		return model.ErrInvalidTransition
	}
	if bet > s.wallet.Balance() {
		return model.ErrInsufficientFunds
	}
	return nil
}

// CanHit Взять карту можно только в ход игрока
func (s *serv) CanHit() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state == model.BlackjackPlayerTurn
}

// CanStand Остановиться можно только в ход игрока
func (s *serv) CanStand() bool {
	return s.CanHit()
}

// Deal Списать ставку, перемешать колоду и раздать по две карты
func (s *serv) Deal(ctx context.Context, req model.BlackjackDeal) (*model.BlackjackTable, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.canDeal(req.Bet); err != nil {
		round.Reject(model.GameBlackjack, "deal", err)
		return nil, fmt.Errorf("blackjack deal: %w", err)
	}
	if err := s.wallet.Debit(req.Bet); err != nil {
		round.Reject(model.GameBlackjack, "deal", err)
		return nil, fmt.Errorf("blackjack deal: %w", err)
	}
	if err := s.guard.Commit(); err != nil {
		return nil, err
	}

	s.bet = req.Bet
	s.delta = -req.Bet
	s.outcome = model.OutcomeNone
	s.payout = 0
	s.dealerDraws = nil
	s.deck = s.newDeck()

	// Раздача: игрок, игрок, дилер, дилер
	p1, p2 := s.draw(), s.draw()
	d1, d2 := s.draw(), s.draw()
	s.player = []model.Card{p1, p2}
	s.dealer = []model.Card{d1, d2}
	s.state = model.BlackjackPlayerTurn

	// Натуральный блэкджек проверяется только у игрока
	if score(s.player) == blackjack {
		if err := s.settle(ctx, model.OutcomeNatural); err != nil {
			return nil, err
		}
	}

	t := s.table()
	return &t, nil
}

// Hit Взять карту. Перебор сразу завершает раунд
func (s *serv) Hit(ctx context.Context) (*model.BlackjackTable, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.BlackjackPlayerTurn {
		round.Reject(model.GameBlackjack, "hit", model.ErrInvalidTransition)
		return nil, fmt.Errorf("blackjack hit in %s: %w", s.state, model.ErrInvalidTransition)
	}

	s.delta = 0
	s.player = append(s.player, s.draw())
	if score(s.player) > blackjack {
		if err := s.settle(ctx, model.OutcomeBust); err != nil {
			return nil, err
		}
	}

	t := s.table()
	return &t, nil
}

// Stand Ход дилера: добирает, пока меньше standsOn, затем расчет
func (s *serv) Stand(ctx context.Context) (*model.BlackjackTable, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.BlackjackPlayerTurn {
		round.Reject(model.GameBlackjack, "stand", model.ErrInvalidTransition)
		return nil, fmt.Errorf("blackjack stand in %s: %w", s.state, model.ErrInvalidTransition)
	}

	s.delta = 0
	s.state = model.BlackjackDealerTurn
	for score(s.dealer) < s.standsOn {
		c := s.draw()
		s.dealer = append(s.dealer, c)
		s.dealerDraws = append(s.dealerDraws, c)
	}

	ps, ds := score(s.player), score(s.dealer)
	var outcome model.BlackjackOutcome
	switch {
	case ds > blackjack:
		outcome = model.OutcomeDealerBust
	case ps > ds:
		outcome = model.OutcomeWin
	case ps < ds:
		outcome = model.OutcomeLose
	default:
		outcome = model.OutcomePush
	}
	if err := s.settle(ctx, outcome); err != nil {
		return nil, err
	}

	t := s.table()
	return &t, nil
}

// settle Начислить выплату: выигрыш 2x ставки, ничья возвращает ставку
func (s *serv) settle(ctx context.Context, outcome model.BlackjackOutcome) error {
	payout := 0
	switch outcome {
	case model.OutcomeNatural, model.OutcomeWin, model.OutcomeDealerBust:
		payout = 2 * s.bet
	case model.OutcomePush:
		payout = s.bet
	}

	if err := s.wallet.Credit(payout); err != nil {
		return fmt.Errorf("blackjack credit: %w", err)
	}
	if err := s.guard.Resolve(); err != nil {
		return err
	}

	s.outcome = outcome
	s.payout = payout
	s.delta += payout
	s.state = model.BlackjackSettled

	s.recorder.Record(ctx, model.Round{
		Game:    model.GameBlackjack,
		Stake:   s.bet,
		Payout:  payout,
		Outcome: string(outcome),
		Balance: s.wallet.Balance(),
	})
	return nil
}
