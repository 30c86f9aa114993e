package story

import (
	"sync"

	"house_fund/internal/config"
	"house_fund/internal/ledger"
	"house_fund/internal/model"
	"house_fund/internal/service"
)

// Purse Баланс, за которым следит сюжет
type Purse interface {
	Balance() int
	Subscribe(fn ledger.Listener)
}

type serv struct {
	mtx     sync.Mutex
	purse   Purse
	scenes  map[int]model.StoryScene
	threats []model.ThreatLevel

	progress int
	current  *model.StoryScene
	hidden   bool
}

// NewStoryService Создать сюжет и подписать его на изменения баланса.
// Первая сцена проверяется сразу по текущему балансу
func NewStoryService(cfg config.StoryConfig, purse Purse) service.StoryService {
	s := &serv{
		purse:   purse,
		scenes:  make(map[int]model.StoryScene),
		threats: cfg.Threats(),
	}
	for _, sc := range cfg.Scenes() {
		s.scenes[sc.ID] = sc
	}

	s.mtx.Lock()
	s.evaluate(purse.Balance())
	s.mtx.Unlock()

	purse.Subscribe(s.onBalance)
	return s
}

// View Текущая сцена и прогресс
func (s *serv) View() model.StoryView {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.view()
}

func (s *serv) view() model.StoryView {
	var scene *model.StoryScene
	if s.current != nil {
		cp := *s.current
		scene = &cp
	}
	return model.StoryView{
		Progress: s.progress,
		Scene:    scene,
		Hidden:   s.hidden,
		Threat:   threat(s.threats, s.progress),
	}
}

// threat Текст угрозы для главного экрана по прогрессу сюжета
func threat(levels []model.ThreatLevel, progress int) string {
	fallback := ""
	for _, t := range levels {
		if t.Below == 0 {
			fallback = t.Text
			continue
		}
		if progress < t.Below {
			return t.Text
		}
	}
	return fallback
}
