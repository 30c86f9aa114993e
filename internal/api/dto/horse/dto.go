package horse

type SelectRequest struct {
	HorseID int `json:"horse_id"`
}

type WagerRequest struct {
	Amount int `json:"amount"`
}

type Horse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Odds  int     `json:"odds"`
	Speed float64 `json:"speed"`
}

type RaceResult struct {
	WinnerID int         `json:"winner_id"`
	PlayerID int         `json:"player_id"`
	Wager    int         `json:"wager"`
	Payout   int         `json:"payout"`
	Ticks    int         `json:"ticks"`
	Frames   [][]float64 `json:"frames"` // Прогресс лошадей после каждого тика
}

type RaceResponse struct {
	State    string      `json:"state"` // selecting, racing, finished
	Horses   []Horse     `json:"horses"`
	Selected int         `json:"selected"`
	Wager    int         `json:"wager"`
	Progress []float64   `json:"progress"`
	Last     *RaceResult `json:"last,omitempty"`
	Balance  int         `json:"balance"`
	Delta    int         `json:"delta"`
}
