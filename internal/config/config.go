package config

import (
	"time"

	"house_fund/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type LogConfig interface {
	Level() string
}

// RandomConfig Seed = 0 - сид берется из crypto/rand
type RandomConfig interface {
	Seed() int64
}

type AssetProviderConfig interface {
	URL() string
	Timeout() time.Duration
}

type EconomyConfig interface {
	SeedBalance() int
	Goal() int
	VIPThreshold() int
}

type SlotsConfig interface {
	Symbols() []model.SlotSymbol
	PairMultiplier() decimal.Decimal
	SlotsDefaultBet() int
}

type BlackjackConfig interface {
	DealerStandsOn() int
	BlackjackDefaultBet() int
}

type RouletteConfig interface {
	RouletteDefaultBet() int
}

type HorseConfig interface {
	Horses() []model.Horse
	DefaultWager() int
	MaxTicks() int
}

type ScrapYardConfig interface {
	Parts() []model.CarPart
	Reward() int
}

type StoryConfig interface {
	Scenes() []model.StoryScene
	Threats() []model.ThreatLevel
}

type AssetConfig interface {
	StylePrefix() string
	FallbackURL() string
	Screens() []model.AssetScreen
}

// GameConfig Все игровые таблицы из config.yaml
type GameConfig interface {
	EconomyConfig
	SlotsConfig
	BlackjackConfig
	RouletteConfig
	HorseConfig
	ScrapYardConfig
	StoryConfig
	AssetConfig
}
