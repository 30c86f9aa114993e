package roulette

type BetRequest struct {
	Type   string `json:"type"`   // red, black, even, odd, 0, 1..36
	Amount int    `json:"amount"` // Сумма ставки
}

type Pocket struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
}

type SpinResult struct {
	Index    int            `json:"index"` // Номер ячейки по окружности колеса
	Pocket   Pocket         `json:"pocket"`
	Rotation float64        `json:"rotation"`
	Stake    int            `json:"stake"`
	Payout   int            `json:"payout"`
	Winning  map[string]int `json:"winning"` // Выплата по выигравшим ставкам
}

type StateResponse struct {
	State      string         `json:"state"`
	Slip       map[string]int `json:"slip"` // Текущие ставки
	SlipSum    int            `json:"slip_sum"`
	Rotation   float64        `json:"rotation"`
	DefaultBet int            `json:"default_bet"`
	Last       *SpinResult    `json:"last,omitempty"`
	Balance    int            `json:"balance"`
	Delta      int            `json:"delta"`
}
