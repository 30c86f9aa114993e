package session

import (
	"context"

	"house_fund/internal/config"
	"house_fund/internal/model"
	"house_fund/internal/repository"
	"house_fund/internal/service"
)

// Purse Баланс и цель накопления
type Purse interface {
	Balance() int
	Goal() int
}

type serv struct {
	purse        Purse
	vipThreshold int
	story        service.StoryService
	journal      repository.RoundRepository
	stats        repository.StatsRepository
}

// NewSessionService Сводка по сессии: баланс, цель, сюжет, журнал и статистика
func NewSessionService(
	cfg config.EconomyConfig,
	purse Purse,
	story service.StoryService,
	journal repository.RoundRepository,
	stats repository.StatsRepository,
) service.SessionService {
	return &serv{
		purse:        purse,
		vipThreshold: cfg.VIPThreshold(),
		story:        story,
		journal:      journal,
		stats:        stats,
	}
}

// Session Текущая сводка. VIP - только отметка в зале казино, на игры не влияет
func (s *serv) Session() model.Session {
	balance := s.purse.Balance()
	st := s.story.View()
	return model.Session{
		Balance:     balance,
		Goal:        s.purse.Goal(),
		GoalReached: balance >= s.purse.Goal(),
		VIP:         s.vipThreshold > 0 && balance >= s.vipThreshold,
		Threat:      st.Threat,
		Story:       st,
	}
}

// History Последние раунды из журнала
func (s *serv) History(ctx context.Context, limit int) ([]model.Round, error) {
	return s.journal.ListRounds(ctx, limit)
}

// Stats Статистика выплат по играм
func (s *serv) Stats() []model.GameStats {
	return s.stats.Stats()
}
