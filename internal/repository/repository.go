package repository

import (
	"context"

	"house_fund/internal/model"
)

// RoundRepository Журнал рассчитанных раундов
type RoundRepository interface {
	SaveRound(ctx context.Context, round model.Round) error
	ListRounds(ctx context.Context, limit int) ([]model.Round, error)
}

// StatsRepository Статистика выплат по играм
type StatsRepository interface {
	UpdateState(game model.Game, stake, payout int)
	Stats() []model.GameStats
}
