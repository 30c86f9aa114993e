package blackjack

import (
	"sync"

	"house_fund/internal/config"
	"house_fund/internal/model"
	"house_fund/internal/random"
	"house_fund/internal/service"
	"house_fund/internal/service/round"
)

type serv struct {
	mtx        sync.Mutex
	wallet     service.Wallet
	rng        random.Source
	recorder   *round.Recorder
	guard      round.Guard
	standsOn   int
	defaultBet int

	// newDeck возвращает перемешанную колоду, карты берутся с конца
	newDeck func() []model.Card
	deck    []model.Card

	state       model.BlackjackState
	bet         int
	player      []model.Card
	dealer      []model.Card
	dealerDraws []model.Card
	outcome     model.BlackjackOutcome
	payout      int
	delta       int
}

// NewBlackjackService Создать стол блэкджека на одну колоду
func NewBlackjackService(
	cfg config.BlackjackConfig,
	wallet service.Wallet,
	rng random.Source,
	recorder *round.Recorder,
) service.BlackjackService {
	s := &serv{
		wallet:     wallet,
		rng:        rng,
		recorder:   recorder,
		standsOn:   cfg.DealerStandsOn(),
		defaultBet: cfg.BlackjackDefaultBet(),
		state:      model.BlackjackBetting,
	}
	s.newDeck = func() []model.Card {
		return shuffle(newDeck(), s.rng)
	}
	return s
}

// Table Текущее состояние стола. Пока ходит игрок, вторая карта дилера скрыта
func (s *serv) Table() model.BlackjackTable {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.table()
}

func (s *serv) table() model.BlackjackTable {
	t := model.BlackjackTable{
		State:       s.state,
		Bet:         s.bet,
		PlayerHand:  append([]model.Card(nil), s.player...),
		PlayerScore: score(s.player),
		DealerDraws: append([]model.Card(nil), s.dealerDraws...),
		Outcome:     s.outcome,
		Payout:      s.payout,
		DeckLeft:    len(s.deck),
		Balance:     s.wallet.Balance(),
		Delta:       s.delta,
	}
	if t.State == model.BlackjackBetting && t.Bet == 0 {
		t.Bet = s.defaultBet
	}

	dealer := s.dealer
	if s.state == model.BlackjackPlayerTurn && len(dealer) > 1 {
		t.DealerHidden = len(dealer) - 1
		dealer = dealer[:1]
	}
	t.DealerHand = append([]model.Card(nil), dealer...)
	t.DealerScore = score(dealer)
	return t
}
