package model

// Suit Масть
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
)

// Suits Порядок мастей в новой колоде
var Suits = [4]Suit{Spades, Hearts, Clubs, Diamonds}

// Ranks Порядок достоинств в новой колоде
var Ranks = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card Карта
type Card struct {
	Suit Suit
	Rank string
}

// Value Номинал карты: картинки 10, туз 11
func (c Card) Value() int {
	switch c.Rank {
	case "J", "Q", "K":
		return 10
	case "A":
		return 11
	}
	v := 0
	for _, ch := range c.Rank {
		v = v*10 + int(ch-'0')
	}
	return v
}

// BlackjackState Фаза стола
type BlackjackState string

const (
	BlackjackBetting    BlackjackState = "betting"
	BlackjackPlayerTurn BlackjackState = "player_turn"
	BlackjackDealerTurn BlackjackState = "dealer_turn"
	BlackjackSettled    BlackjackState = "settled"
)

// BlackjackOutcome Итог раздачи
type BlackjackOutcome string

const (
	OutcomeNone       BlackjackOutcome = ""
	OutcomeNatural    BlackjackOutcome = "natural"
	OutcomeBust       BlackjackOutcome = "bust"
	OutcomeDealerBust BlackjackOutcome = "dealer_bust"
	OutcomeWin        BlackjackOutcome = "win"
	OutcomeLose       BlackjackOutcome = "lose"
	OutcomePush       BlackjackOutcome = "push"
)

// BlackjackDeal Запрос на раздачу
type BlackjackDeal struct {
	Bet int
}

// BlackjackTable Наблюдаемое состояние стола.
// Пока ход игрока, вторая карта дилера скрыта: в DealerHand ее нет, DealerHidden = 1
type BlackjackTable struct {
	State        BlackjackState
	Bet          int
	PlayerHand   []Card
	PlayerScore  int
	DealerHand   []Card
	DealerHidden int
	DealerScore  int
	DealerDraws  []Card // Карты, добранные дилером после Stand
	Outcome      BlackjackOutcome
	Payout       int
	DeckLeft     int
	Balance      int
	Delta        int
}
