// Package round общий жизненный цикл раунда со ставкой:
// Idle -> Committed (ставка списана) -> Resolved (выплата начислена)
package round

import (
	"fmt"

	"house_fund/internal/model"
)

// Phase Фаза раунда
type Phase int

const (
	Idle Phase = iota
	Committed
	Resolved
)

func (p Phase) String() string {
	switch p {
	case Committed:
		return "committed"
	case Resolved:
		return "resolved"
	}
	return "idle"
}

// Guard Не дает принять новую ставку, пока текущий раунд не рассчитан.
// Синхронизация на стороне движка
type Guard struct {
	phase Phase
}

// Phase Текущая фаза
func (g *Guard) Phase() Phase {
	return g.phase
}

// CanCommit true, если можно начинать новый раунд
func (g *Guard) CanCommit() bool {
	return g.phase != Committed
}

// Commit Ставка списана, раунд открыт
func (g *Guard) Commit() error {
	if !g.CanCommit() {
		return fmt.Errorf("round %s: %w", g.phase, model.ErrInvalidTransition)
	}
	g.phase = Committed
	return nil
}

// Resolve Выплата начислена, раунд закрыт
func (g *Guard) Resolve() error {
	if g.phase != Committed {
		return fmt.Errorf("round %s: %w", g.phase, model.ErrInvalidTransition)
	}
	g.phase = Resolved
	return nil
}
