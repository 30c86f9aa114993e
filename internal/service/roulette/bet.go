package roulette

import (
	"context"
	"fmt"
	"strconv"

	"house_fund/internal/model"
	"house_fund/internal/service/round"
)

const (
	// evenMoney Выплата за цвет, чет/нечет и зеро
	evenMoney = 2
	// straightUp Выплата за угаданное число 1..36
	straightUp = 36
	// maxNumber Максимальное число на колесе
	maxNumber = 36
)

// ValidBetType Проверить ключ ставки
func ValidBetType(t model.BetType) bool {
	switch t {
	case model.BetRed, model.BetBlack, model.BetEven, model.BetOdd, model.BetZero:
		return true
	}
	_, ok := straightNumber(t)
	return ok
}

// straightNumber Число 1..36 из ключа ставки. "07" и "+7" не принимаются
func straightNumber(t model.BetType) (int, bool) {
	n, err := strconv.Atoi(string(t))
	if err != nil || n < 1 || n > maxNumber || strconv.Itoa(n) != string(t) {
		return 0, false
	}
	return n, true
}

// multiplier Множитель выплаты ставки для выпавшей ячейки, 0 - ставка проиграла
func multiplier(t model.BetType, p model.Pocket) int {
	switch t {
	case model.BetRed:
		if p.Color == model.Red {
			return evenMoney
		}
	case model.BetBlack:
		if p.Color == model.Black {
			return evenMoney
		}
	case model.BetEven:
		if p.Number != 0 && p.Number%2 == 0 {
			return evenMoney
		}
	case model.BetOdd:
		if p.Number%2 == 1 {
			return evenMoney
		}
	case model.BetZero:
		if p.Number == 0 {
			return evenMoney
		}
	default:
		if n, ok := straightNumber(t); ok && n == p.Number {
			return straightUp
		}
	}
	return 0
}

// CanPlaceBet Ставка принимается до спина, если покрыта балансом
func (s *serv) CanPlaceBet(amount int) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.canPlaceBet(model.BetRed, amount) == nil
}

func (s *serv) canPlaceBet(t model.BetType, amount int) error {
	if !ValidBetType(t) {
		return model.ErrUnknownBetType
	}
	if amount <= 0 {
		return model.ErrInvalidAmount
	}
	if s.state != model.RouletteAcceptingBets {
		return model.ErrInvalidTransition
	}
	if amount > s.wallet.Balance() {
		return model.ErrInsufficientFunds
	}
	return nil
}

// PlaceBet Списать сумму и добавить к ставке на ключ. Повторные ставки суммируются
func (s *serv) PlaceBet(_ context.Context, bet model.RouletteBet) (*model.RouletteView, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.canPlaceBet(bet.Type, bet.Amount); err != nil {
		round.Reject(model.GameRoulette, "bet", err)
		return nil, fmt.Errorf("roulette bet %q: %w", bet.Type, err)
	}
	if err := s.wallet.Debit(bet.Amount); err != nil {
		round.Reject(model.GameRoulette, "bet", err)
		return nil, fmt.Errorf("roulette bet %q: %w", bet.Type, err)
	}

	s.slip[bet.Type] += bet.Amount
	s.delta = -bet.Amount

	v := s.view()
	return &v, nil
}
