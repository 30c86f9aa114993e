package model

// PocketColor Цвет ячейки колеса
type PocketColor string

const (
	Green PocketColor = "green"
	Red   PocketColor = "red"
	Black PocketColor = "black"
)

// Pocket Ячейка колеса
type Pocket struct {
	Number int
	Color  PocketColor
}

// Wheel Европейское колесо в порядке ячеек по окружности
var Wheel = [37]Pocket{
	{0, Green}, {32, Red}, {15, Black}, {19, Red}, {4, Black}, {21, Red}, {2, Black},
	{25, Red}, {17, Black}, {34, Red}, {6, Black}, {27, Red}, {13, Black}, {36, Red},
	{11, Black}, {30, Red}, {8, Black}, {23, Red}, {10, Black}, {5, Red}, {24, Black},
	{16, Red}, {33, Black}, {1, Red}, {20, Black}, {14, Red}, {31, Black}, {9, Red},
	{22, Black}, {18, Red}, {29, Black}, {7, Red}, {28, Black}, {12, Red}, {35, Black},
	{3, Red}, {26, Black},
}

// BetType Ключ ставки: red, black, even, odd, "0" или число "1".."36"
type BetType string

const (
	BetRed   BetType = "red"
	BetBlack BetType = "black"
	BetEven  BetType = "even"
	BetOdd   BetType = "odd"
	BetZero  BetType = "0"
)

// RouletteState Фаза рулетки
type RouletteState string

const (
	RouletteAcceptingBets RouletteState = "accepting_bets"
	RouletteSpinning      RouletteState = "spinning"
	RouletteSettled       RouletteState = "settled"
)

// RouletteBet Запрос на ставку
type RouletteBet struct {
	Type   BetType
	Amount int
}

// RouletteSpinResult Результат спина рулетки
type RouletteSpinResult struct {
	Index    int
	Pocket   Pocket
	Rotation float64
	Stake    int
	Payout   int
	Winning  map[BetType]int // Выплата по каждой выигравшей ставке
}

// RouletteView Наблюдаемое состояние рулетки
type RouletteView struct {
	State      RouletteState
	Slip       map[BetType]int
	SlipSum    int
	Rotation   float64
	DefaultBet int
	Last       *RouletteSpinResult
	Balance    int
	Delta      int
}
