package slots

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное целое, >0)
}

type Symbol struct {
	ID         string `json:"id"`
	Glyph      string `json:"glyph"`
	Multiplier int    `json:"multiplier"`
}

type SpinResponse struct {
	RoundID string    `json:"round_id"`
	Reels   [3]Symbol `json:"reels"`   // Символы слева направо
	Bet     int       `json:"bet"`
	Win     string    `json:"win"`     // none, pair, triple
	Payout  int       `json:"payout"`  // Выплата
	Balance int       `json:"balance"` // Баланс после
	Delta   int       `json:"delta"`   // Изменение баланса за спин
}

type StateResponse struct {
	State      string        `json:"state"`
	Symbols    []Symbol      `json:"symbols"` // Таблица выплат
	DefaultBet int           `json:"default_bet"`
	Last       *SpinResponse `json:"last,omitempty"`
	Balance    int           `json:"balance"`
}
