package model

// Horse Участник забега. Odds выплачиваются как ставка*Odds
type Horse struct {
	ID    int
	Name  string
	Odds  int
	Speed float64
}

// HorseState Фаза забега
type HorseState string

const (
	HorseSelecting HorseState = "selecting"
	HorseRacing    HorseState = "racing"
	HorseFinished  HorseState = "finished"
)

// RaceResult Итог забега
type RaceResult struct {
	WinnerID int
	PlayerID int
	Wager    int
	Payout   int
	Ticks    int
	Frames   [][]float64 // Прогресс лошадей (в порядке Horses) после каждого тика
}

// RaceView Наблюдаемое состояние ипподрома
type RaceView struct {
	State    HorseState
	Horses   []Horse
	Selected int // 0, если лошадь не выбрана
	Wager    int
	Progress []float64
	Last     *RaceResult
	Balance  int
	Delta    int
}
