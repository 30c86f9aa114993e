package roulette

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
	defaultBet int

	state    model.RouletteState
	slip     map[model.BetType]int
	rotation float64
	last     *model.RouletteSpinResult
	delta    int
}

// NewRouletteService Создать европейскую рулетку на 37 ячеек
func NewRouletteService(
	cfg config.RouletteConfig,
	wallet service.Wallet,
	rng random.Source,
	recorder *round.Recorder,
) service.RouletteService {
	return &serv{
		wallet:     wallet,
		rng:        rng,
		recorder:   recorder,
		defaultBet: cfg.RouletteDefaultBet(),
		state:      model.RouletteAcceptingBets,
		slip:       make(map[model.BetType]int),
	}
}

// View Текущее состояние рулетки
func (s *serv) View() model.RouletteView {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.view()
}

func (s *serv) view() model.RouletteView {
	slip := make(map[model.BetType]int, len(s.slip))
	sum := 0
	for k, v := range s.slip {
		slip[k] = v
		sum += v
	}
	var last *model.RouletteSpinResult
	if s.last != nil {
		cp := *s.last
		cp.Winning = make(map[model.BetType]int, len(s.last.Winning))
		for k, v := range s.last.Winning {
			cp.Winning[k] = v
		}
		last = &cp
	}
	return model.RouletteView{
		State:      s.state,
		Slip:       slip,
		SlipSum:    sum,
		Rotation:   s.rotation,
		DefaultBet: s.defaultBet,
		Last:       last,
		Balance:    s.wallet.Balance(),
		Delta:      s.delta,
	}
}
