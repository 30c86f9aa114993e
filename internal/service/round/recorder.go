package round

import (
	"context"
	"time"

	"house_fund/internal/logger"
	"house_fund/internal/model"
	"house_fund/internal/monitoring"
	"house_fund/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder Пишет рассчитанные раунды в журнал, статистику и метрики.
// Ошибка журнала не отменяет раунд: баланс уже изменен
type Recorder struct {
	journal repository.RoundRepository
	stats   repository.StatsRepository
}

// NewRecorder Любой из репозиториев может быть nil
func NewRecorder(journal repository.RoundRepository, stats repository.StatsRepository) *Recorder {
	return &Recorder{
		journal: journal,
		stats:   stats,
	}
}

// Record Зафиксировать раунд. Возвращает раунд с проставленными ID и временем
func (r *Recorder) Record(ctx context.Context, rd model.Round) model.Round {
	if rd.ID == uuid.Nil {
		rd.ID = uuid.New()
	}
	if rd.SettledAt.IsZero() {
		rd.SettledAt = time.Now().UTC()
	}

	game := string(rd.Game)
	monitoring.RoundsTotal.WithLabelValues(game, rd.Outcome).Inc()
	monitoring.WageredTotal.WithLabelValues(game).Add(float64(rd.Stake))
	monitoring.PaidOutTotal.WithLabelValues(game).Add(float64(rd.Payout))

	logger.Log.Info("round settled",
		zap.String("game", game),
		zap.String("round_id", rd.ID.String()),
		zap.Int("stake", rd.Stake),
		zap.Int("payout", rd.Payout),
		zap.String("outcome", rd.Outcome),
		zap.Int("balance", rd.Balance),
	)

	if r == nil {
		return rd
	}
	if r.stats != nil {
		r.stats.UpdateState(rd.Game, rd.Stake, rd.Payout)
	}
	if r.journal != nil {
		if err := r.journal.SaveRound(ctx, rd); err != nil {
			logger.Log.Error("failed to save round",
				zap.String("round_id", rd.ID.String()),
				zap.Error(err),
			)
		}
	}
	return rd
}

// Reject Учесть отклоненное действие игрока
func Reject(game model.Game, action string, err error) {
	monitoring.RejectedIntents.WithLabelValues(string(game)).Inc()
	logger.Log.Debug("intent rejected",
		zap.String("game", string(game)),
		zap.String("action", action),
		zap.Error(err),
	)
}
