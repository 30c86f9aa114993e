package stats_repo

import (
	"sort"
	"sync"

	"house_fund/internal/model"
	repoModel "house_fund/internal/repository/stats_repo/model"
)

const (
	// windowSize Размер окна последних раундов
	windowSize = 500
)

// StatsRepo Реализация репозитория статистики выплат в памяти
type StatsRepo struct {
	mtx    sync.RWMutex
	states map[model.Game]*repoModel.GameState
}

// NewStatsRepository Конструктор для создания нового репозитория с пустой статистикой
func NewStatsRepository() *StatsRepo {
	return &StatsRepo{
		states: make(map[model.Game]*repoModel.GameState),
	}
}

// GameState Копия состояния статистики по игре
func (r *StatsRepo) GameState(game model.Game) (repoModel.GameState, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	st, ok := r.states[game]
	if !ok {
		return repoModel.GameState{}, false
	}
	cp := *st
	cp.RoundWindow = append([]repoModel.RoundResult(nil), st.RoundWindow...)
	return cp, true
}

// UpdateState Обновление статистики после раунда
func (r *StatsRepo) UpdateState(game model.Game, stake, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.states[game]
	if !ok {
		st = &repoModel.GameState{
			RoundWindow: make([]repoModel.RoundResult, 0),
			WindowSize:  windowSize,
		}
		r.states[game] = st
	}

	bet := float64(stake)
	win := float64(payout)

	st.TotalRounds++
	st.TotalBet += bet
	st.TotalPayout += win
	if st.TotalBet > 0 {
		st.CurrentRTP = st.TotalPayout / st.TotalBet * 100
	}

	// Добавляем раунд в окно
	roundRTP := 0.0
	if bet > 0 {
		roundRTP = win / bet * 100
	}
	st.RoundWindow = append(st.RoundWindow, repoModel.RoundResult{
		Bet:    bet,
		Payout: win,
		RTP:    roundRTP,
	})

	// Поддерживаем размер окна
	if len(st.RoundWindow) > st.WindowSize {
		st.RoundWindow = st.RoundWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, rr := range st.RoundWindow {
		windowBet += rr.Bet
		windowPayout += rr.Payout
	}

	if windowBet > 0 {
		st.WindowRTP = windowPayout / windowBet * 100
	} else {
		st.WindowRTP = 0
	}
}

// Stats Сводка по всем играм, отсортированная по имени игры
func (r *StatsRepo) Stats() []model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.GameStats, 0, len(r.states))
	for game, st := range r.states {
		out = append(out, model.GameStats{
			Game:        game,
			Rounds:      st.TotalRounds,
			TotalStake:  int(st.TotalBet),
			TotalPayout: int(st.TotalPayout),
			RTP:         st.CurrentRTP,
			WindowRTP:   st.WindowRTP,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Game < out[j].Game })
	return out
}
