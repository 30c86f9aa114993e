package scrapyard

import (
	"sync"

	"house_fund/internal/config"
	"house_fund/internal/model"
	"house_fund/internal/service"
	"house_fund/internal/service/round"
)

type serv struct {
	mtx      sync.Mutex
	wallet   service.Wallet
	recorder *round.Recorder
	template []model.CarPart
	reward   int

	state model.ScrapYardState
	parts []model.CarPart
	delta int
}

// NewScrapYardService Создать работу на свалке: разобрать машину за фиксированную плату
func NewScrapYardService(
	cfg config.ScrapYardConfig,
	wallet service.Wallet,
	recorder *round.Recorder,
) service.ScrapYardService {
	s := &serv{
		wallet:   wallet,
		recorder: recorder,
		template: cfg.Parts(),
		reward:   cfg.Reward(),
	}
	s.reset()
	return s
}

func (s *serv) reset() {
	s.parts = append([]model.CarPart(nil), s.template...)
	s.state = model.ScrapYardActive
	s.delta = 0
}

// View Текущее состояние машины
func (s *serv) View() model.ScrapYardView {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.view()
}

func (s *serv) view() model.ScrapYardView {
	removed := 0
	for _, p := range s.parts {
		if p.Health == 0 {
			removed++
		}
	}
	return model.ScrapYardView{
		State:   s.state,
		Parts:   append([]model.CarPart(nil), s.parts...),
		Removed: removed,
		Reward:  s.reward,
		Balance: s.wallet.Balance(),
		Delta:   s.delta,
	}
}

func (s *serv) part(id string) (int, bool) {
	for i, p := range s.parts {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}
