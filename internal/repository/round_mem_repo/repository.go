package round_mem_repo

import (
	"context"
	"sync"

	"house_fund/internal/model"
	"house_fund/internal/repository"
)

const (
	// maxRounds Сколько последних раундов держим в памяти
	maxRounds = 1000
)

// Журнал раундов в памяти, когда Postgres не настроен
type repo struct {
	mtx    sync.RWMutex
	rounds []model.Round
}

func NewRoundRepository() repository.RoundRepository {
	return &repo{
		rounds: make([]model.Round, 0),
	}
}

func (r *repo) SaveRound(_ context.Context, round model.Round) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.rounds = append(r.rounds, round)
	if len(r.rounds) > maxRounds {
		r.rounds = r.rounds[len(r.rounds)-maxRounds:]
	}
	return nil
}

// ListRounds Последние раунды, новые первыми
func (r *repo) ListRounds(_ context.Context, limit int) ([]model.Round, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	n := len(r.rounds)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.Round, 0, n)
	for i := len(r.rounds) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.rounds[i])
	}
	return out, nil
}
