package model

// GameState Состояние статистики по одной игре
type GameState struct {
	TotalRounds int     // Сколько всего раундов сыграно
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	RoundWindow []RoundResult // Окно последних раундов для анализа
	WindowRTP   float64       // RTP в окне последних раундов
	WindowSize  int           // Размер окна для анализа RTP
}

// RoundResult Результат раунда для окна
type RoundResult struct {
	Bet    float64
	Payout float64
	RTP    float64
}
