package slots

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
	table      model.SlotsTable
	defaultBet int
	wallet     service.Wallet
	rng        random.Source
	recorder   *round.Recorder
	guard      round.Guard
	state      model.SlotsState
	last       *model.SlotSpinResult
}

// NewSlotsService Создать слот 3 барабана с одной линией
func NewSlotsService(
	cfg config.SlotsConfig,
	wallet service.Wallet,
	rng random.Source,
	recorder *round.Recorder,
) service.SlotsService {
	return &serv{
		table: model.SlotsTable{
			Symbols:        cfg.Symbols(),
			PairMultiplier: cfg.PairMultiplier(),
		},
		defaultBet: cfg.SlotsDefaultBet(),
		wallet:     wallet,
		rng:        rng,
		recorder:   recorder,
		state:      model.SlotsIdle,
	}
}

// View Текущее состояние слота
func (s *serv) View() model.SlotsView {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var last *model.SlotSpinResult
	if s.last != nil {
		cp := *s.last
		last = &cp
	}
	return model.SlotsView{
		State:      s.state,
		Symbols:    append([]model.SlotSymbol(nil), s.table.Symbols...),
		DefaultBet: s.defaultBet,
		Last:       last,
		Balance:    s.wallet.Balance(),
	}
}
