package slots

import (
	"context"
	"fmt"

	"house_fund/internal/model"
	"house_fund/internal/random"
	"house_fund/internal/service/round"

	"github.com/shopspring/decimal"
)

const (
	// Барабаны
	reels = 3
)

// CanSpin Спин возможен, если слот свободен и ставка покрыта балансом
func (s *serv) CanSpin(bet int) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.canSpin(bet) == nil
}

func (s *serv) canSpin(bet int) error {
	if bet <= 0 {
		return model.ErrInvalidAmount
	}
	if s.state != model.SlotsIdle || !s.guard.CanCommit() {
		return model.ErrInvalidTransition
	}
	if bet > s.wallet.Balance() {
		return model.ErrInsufficientFunds
	}
	return nil
}

// Spin выполняет спин: списание ставки, три барабана, начисление выигрыша
func (s *serv) Spin(ctx context.Context, req model.SlotSpin) (*model.SlotSpinResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	// Валидация ставки
	if err := s.canSpin(req.Bet); err != nil {
		round.Reject(model.GameSlots, "spin", err)
		return nil, fmt.Errorf("slots spin: %w", err)
	}

	// Списание ставки
	if err := s.wallet.Debit(req.Bet); err != nil {
		round.Reject(model.GameSlots, "spin", err)
		return nil, fmt.Errorf("slots spin: %w", err)
	}
	if err := s.guard.Commit(); err != nil {
		return nil, err
	}
	s.state = model.SlotsSpinning

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Каждый барабан - независимое равновероятное значение
	var board [reels]model.SlotSymbol
	for i := range board {
		board[i] = s.table.Symbols[random.Index(s.rng, len(s.table.Symbols))]
	}
	payout, win := evaluate(board, req.Bet, s.table)

	// Начисление выигрыша
	if err := s.wallet.Credit(payout); err != nil {
		return nil, fmt.Errorf("slots credit: %w", err)
	}
	if err := s.guard.Resolve(); err != nil {
		return nil, err
	}
	s.state = model.SlotsIdle

	rd := s.recorder.Record(ctx, model.Round{
		Game:    model.GameSlots,
		Stake:   req.Bet,
		Payout:  payout,
		Outcome: string(win),
		Balance: s.wallet.Balance(),
	})

	res := &model.SlotSpinResult{
		RoundID: rd.ID,
		Reels:   board,
		Bet:     req.Bet,
		Payout:  payout,
		Win:     win,
		Balance: rd.Balance,
		Delta:   payout - req.Bet,
	}
	s.last = res
	cp := *res
	return &cp, nil
}

// evaluate Три одинаковых - ставка*множитель символа, любая пара - floor(ставка*множитель пары)
func evaluate(board [reels]model.SlotSymbol, bet int, table model.SlotsTable) (int, model.WinKind) {
	a, b, c := board[0].ID, board[1].ID, board[2].ID
	if a == b && b == c {
		return bet * board[0].Multiplier, model.WinTriple
	}
	if a == b || b == c || a == c {
		return int(table.PairMultiplier.Mul(decimalFromInt(bet)).Floor().IntPart()), model.WinPair
	}
	return 0, model.WinNone
}

func decimalFromInt(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}
