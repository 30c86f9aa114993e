package model

import (
	"time"

	"github.com/google/uuid"
)

// Game Идентификатор игры
type Game string

const (
	GameSlots     Game = "slots"
	GameBlackjack Game = "blackjack"
	GameRoulette  Game = "roulette"
	GameHorses    Game = "horses"
	GameScrapYard Game = "scrapyard"
)

// Round Завершенный раунд для журнала
type Round struct {
	ID        uuid.UUID
	Game      Game
	Stake     int
	Payout    int
	Outcome   string
	Balance   int
	SettledAt time.Time
}

// GameStats Статистика выплат по игре
type GameStats struct {
	Game        Game
	Rounds      int
	TotalStake  int
	TotalPayout int
	RTP         float64 // (TotalPayout/TotalStake)*100
	WindowRTP   float64 // RTP в окне последних раундов
}
