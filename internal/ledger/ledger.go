// Package ledger единый кошелек игрока, общий для всех игр
package ledger

import (
	"fmt"
	"sync"

	"house_fund/internal/model"
)

// Listener получает баланс после каждого изменения
type Listener func(balance int)

// Ledger Баланс игрока и цель накопления.
// Баланс никогда не уходит в минус: списание больше баланса отклоняется
type Ledger struct {
	mtx       sync.Mutex
	balance   int
	goal      int
	listeners []Listener
}

// New Создать кошелек со стартовым балансом и целью
func New(seed, goal int) *Ledger {
	if seed < 0 {
		seed = 0
	}
	return &Ledger{
		balance: seed,
		goal:    goal,
	}
}

// Balance Текущий баланс
func (l *Ledger) Balance() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.balance
}

// Goal Сумма, которую нужно накопить
func (l *Ledger) Goal() int {
	return l.goal
}

// GoalReached true, если баланс достиг цели
func (l *Ledger) GoalReached() bool {
	return l.Balance() >= l.goal
}

// Debit Списать ставку. При нехватке средств баланс не меняется
func (l *Ledger) Debit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("debit %d: %w", amount, model.ErrInvalidAmount)
	}

	l.mtx.Lock()
	if amount > l.balance {
		l.mtx.Unlock()
		return fmt.Errorf("debit %d: %w", amount, model.ErrInsufficientFunds)
	}
	l.balance -= amount
	balance := l.balance
	listeners := l.snapshot()
	l.mtx.Unlock()

	notify(listeners, balance)
	return nil
}

// Credit Начислить выигрыш. Нулевое начисление ничего не делает
func (l *Ledger) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit %d: %w", amount, model.ErrInvalidAmount)
	}
	if amount == 0 {
		return nil
	}

	l.mtx.Lock()
	l.balance += amount
	balance := l.balance
	listeners := l.snapshot()
	l.mtx.Unlock()

	notify(listeners, balance)
	return nil
}

// Subscribe Подписаться на изменения баланса.
// Подписчики вызываются вне блокировки кошелька и могут читать Balance
func (l *Ledger) Subscribe(fn Listener) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.listeners = append(l.listeners, fn)
}

func (l *Ledger) snapshot() []Listener {
	out := make([]Listener, len(l.listeners))
	copy(out, l.listeners)
	return out
}

func notify(listeners []Listener, balance int) {
	for _, fn := range listeners {
		fn(balance)
	}
}
