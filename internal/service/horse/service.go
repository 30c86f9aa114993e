package horse

import (
	"sync"

	"house_fund/internal/config"
	"house_fund/internal/model"
	"house_fund/internal/random"
	"house_fund/internal/service"
	"house_fund/internal/service/round"
)

type serv struct {
	mtx      sync.Mutex
	wallet   service.Wallet
	rng      random.Source
	recorder *round.Recorder
	guard    round.Guard
	horses   []model.Horse
	maxTicks int

	state    model.HorseState
	selected int
	wager    int
	progress []float64
	last     *model.RaceResult
	delta    int
}

// NewHorseService Создать ипподром с заданным составом лошадей
func NewHorseService(
	cfg config.HorseConfig,
	wallet service.Wallet,
	rng random.Source,
	recorder *round.Recorder,
) service.HorseService {
	horses := cfg.Horses()
	return &serv{
		wallet:   wallet,
		rng:      rng,
		recorder: recorder,
		horses:   horses,
		maxTicks: cfg.MaxTicks(),
		state:    model.HorseSelecting,
		wager:    cfg.DefaultWager(),
		progress: make([]float64, len(horses)),
	}
}

// View Текущее состояние ипподрома
func (s *serv) View() model.RaceView {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.view()
}

func (s *serv) view() model.RaceView {
	var last *model.RaceResult
	if s.last != nil {
		cp := *s.last
		last = &cp
	}
	return model.RaceView{
		State:    s.state,
		Horses:   append([]model.Horse(nil), s.horses...),
		Selected: s.selected,
		Wager:    s.wager,
		Progress: append([]float64(nil), s.progress...),
		Last:     last,
		Balance:  s.wallet.Balance(),
		Delta:    s.delta,
	}
}

func (s *serv) horse(id int) (model.Horse, bool) {
	for _, h := range s.horses {
		if h.ID == id {
			return h, true
		}
	}
	return model.Horse{}, false
}
