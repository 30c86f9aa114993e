package service

import (
	"context"

	"house_fund/internal/model"
)

// Wallet Общий кошелек, через который игры списывают ставки и начисляют выигрыши
type Wallet interface {
	Balance() int
	Debit(amount int) error
	Credit(amount int) error
}

type SlotsService interface {
	Spin(ctx context.Context, req model.SlotSpin) (*model.SlotSpinResult, error)
	CanSpin(bet int) bool
	View() model.SlotsView
}

type BlackjackService interface {
	Deal(ctx context.Context, req model.BlackjackDeal) (*model.BlackjackTable, error)
	Hit(ctx context.Context) (*model.BlackjackTable, error)
	Stand(ctx context.Context) (*model.BlackjackTable, error)
	CanDeal(bet int) bool
	CanHit() bool
	CanStand() bool
	Table() model.BlackjackTable
}

type RouletteService interface {
	PlaceBet(ctx context.Context, bet model.RouletteBet) (*model.RouletteView, error)
	Spin(ctx context.Context) (*model.RouletteView, error)
	CanPlaceBet(amount int) bool
	CanSpin() bool
	View() model.RouletteView
}

type HorseService interface {
	SelectHorse(ctx context.Context, id int) (*model.RaceView, error)
	SetWager(ctx context.Context, amount int) (*model.RaceView, error)
	StartRace(ctx context.Context) (*model.RaceView, error)
	CanStartRace() bool
	View() model.RaceView
}

type ScrapYardService interface {
	Strike(ctx context.Context, partID string) (*model.ScrapYardView, error)
	Restart(ctx context.Context) (*model.ScrapYardView, error)
	CanStrike(partID string) bool
	View() model.ScrapYardView
}

type StoryService interface {
	Advance(ctx context.Context) (*model.StoryView, error)
	Dismiss() model.StoryView
	Resume() model.StoryView
	CanAdvance() bool
	View() model.StoryView
}

type AssetService interface {
	SceneImage(ctx context.Context, screen string) (model.SceneImage, error)
	Prefetch(ctx context.Context)
}

type SessionService interface {
	Session() model.Session
	History(ctx context.Context, limit int) ([]model.Round, error)
	Stats() []model.GameStats
}
