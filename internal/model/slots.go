package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SlotSymbol Символ барабана
type SlotSymbol struct {
	ID         string
	Glyph      string
	Multiplier int
}

// SlotsTable Таблица выплат слота
type SlotsTable struct {
	Symbols        []SlotSymbol
	PairMultiplier decimal.Decimal
}

// WinKind Вид выигрыша в слоте
type WinKind string

const (
	WinNone   WinKind = "none"
	WinPair   WinKind = "pair"
	WinTriple WinKind = "triple"
)

// SlotSpin Запрос на спин
type SlotSpin struct {
	Bet int
}

// SlotSpinResult Результат одного спина
type SlotSpinResult struct {
	RoundID uuid.UUID
	Reels   [3]SlotSymbol
	Bet     int
	Payout  int
	Win     WinKind
	Balance int
	Delta   int
}

// SlotsState Фаза слота
type SlotsState string

const (
	SlotsIdle     SlotsState = "idle"
	SlotsSpinning SlotsState = "spinning"
)

// SlotsView Наблюдаемое состояние слота
type SlotsView struct {
	State      SlotsState
	Symbols    []SlotSymbol
	DefaultBet int
	Last       *SlotSpinResult
	Balance    int
}
