package blackjack

import (
	"context"
	"errors"
	"testing"

	"house_fund/internal/ledger"
	"house_fund/internal/model"
	"house_fund/internal/random"
)

type blackjackConfig struct{}

func (blackjackConfig) DealerStandsOn() int      { return 17 }
func (blackjackConfig) BlackjackDefaultBet() int { return 50 }

func card(rank string) model.Card {
	return model.Card{Suit: model.Spades, Rank: rank}
}

// stacked колода, из которой карты выходят в порядке ranks
func stacked(ranks ...string) func() []model.Card {
	return func() []model.Card {
		deck := make([]model.Card, len(ranks))
		for i, r := range ranks {
			deck[len(ranks)-1-i] = card(r)
		}
		return deck
	}
}

func newTestService(balance int, ranks ...string) (*serv, *ledger.Ledger) {
	l := ledger.New(balance, 10000)
	s := NewBlackjackService(blackjackConfig{}, l, random.NewScripted(0.5), nil).(*serv)
	s.newDeck = stacked(ranks...)
	return s, l
}

// TestScore тузы считаются за 11, пока нет перебора
func TestScore(t *testing.T) {
	tests := []struct {
		hand []string
		want int
	}{
		{[]string{"A", "K"}, 21},
		{[]string{"A", "A"}, 12},
		{[]string{"A", "5", "K"}, 16},
		{[]string{"A", "A", "9"}, 21},
		{[]string{"K", "Q", "5"}, 25},
		{[]string{"2", "3", "4"}, 9},
		{[]string{"10", "J"}, 20},
	}
	for _, tt := range tests {
		hand := make([]model.Card, len(tt.hand))
		for i, r := range tt.hand {
			hand[i] = card(r)
		}
		if got := score(hand); got != tt.want {
			t.Fatalf("score(%v): expected %d, got %d", tt.hand, tt.want, got)
		}
	}
}

// TestShuffle тасование дает перестановку 52 уникальных карт, детерминированную сидом
func TestShuffle(t *testing.T) {
	a := shuffle(newDeck(), random.New(1))
	b := shuffle(newDeck(), random.New(1))
	if len(a) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(a))
	}
	seen := make(map[model.Card]bool)
	for i, c := range a {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
		if b[i] != c {
			t.Fatalf("same seed gave different order at %d", i)
		}
	}
}

// TestNatural туз и король на раздаче сразу платят 2x ставки
func TestNatural(t *testing.T) {
	s, l := newTestService(500, "A", "K", "5", "9")
	tb, err := s.Deal(context.Background(), model.BlackjackDeal{Bet: 100})
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if tb.State != model.BlackjackSettled || tb.Outcome != model.OutcomeNatural {
		t.Fatalf("expected settled natural, got %s %s", tb.State, tb.Outcome)
	}
	if l.Balance() != 600 || tb.Delta != 100 {
		t.Fatalf("expected balance 600 delta 100, got %d/%d", l.Balance(), tb.Delta)
	}
	if len(tb.DealerHand) != 2 || tb.DealerHidden != 0 {
		t.Fatalf("expected dealer hand revealed after settle")
	}
	if s.CanHit() || s.CanStand() {
		t.Fatalf("expected no hit or stand after natural")
	}
}

// TestBust перебор при взятии карты: ставка проиграна, раунд завершен
func TestBust(t *testing.T) {
	s, l := newTestService(500, "10", "6", "9", "7", "K")
	ctx := context.Background()
	if _, err := s.Deal(ctx, model.BlackjackDeal{Bet: 100}); err != nil {
		t.Fatalf("deal: %v", err)
	}
	tb, err := s.Hit(ctx)
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if tb.Outcome != model.OutcomeBust || tb.PlayerScore != 26 {
		t.Fatalf("expected bust at 26, got %s %d", tb.Outcome, tb.PlayerScore)
	}
	if l.Balance() != 400 {
		t.Fatalf("expected balance 400, got %d", l.Balance())
	}
	if _, err := s.Hit(ctx); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after bust, got %v", err)
	}
}

// TestHitToTwentyOne 21 после взятия карты не завершает ход игрока
func TestHitToTwentyOne(t *testing.T) {
	s, _ := newTestService(500, "10", "5", "9", "7", "6")
	ctx := context.Background()
	_, _ = s.Deal(ctx, model.BlackjackDeal{Bet: 10})
	tb, err := s.Hit(ctx)
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if tb.State != model.BlackjackPlayerTurn || tb.PlayerScore != 21 {
		t.Fatalf("expected player turn at 21, got %s %d", tb.State, tb.PlayerScore)
	}
}

// TestStand ход дилера и расчет
func TestStand(t *testing.T) {
	tests := []struct {
		name    string
		ranks   []string
		outcome model.BlackjackOutcome
		balance int
		draws   int
	}{
		{"win", []string{"10", "9", "10", "6", "2"}, model.OutcomeWin, 600, 1},
		{"lose", []string{"10", "9", "10", "6", "5"}, model.OutcomeLose, 400, 1},
		{"dealer bust", []string{"10", "9", "10", "6", "K"}, model.OutcomeDealerBust, 600, 1},
		{"push", []string{"10", "8", "10", "8"}, model.OutcomePush, 500, 0},
		{"soft seventeen stands", []string{"10", "8", "A", "6"}, model.OutcomeWin, 600, 0},
		{"several draws", []string{"10", "9", "2", "3", "2", "2", "A"}, model.OutcomeLose, 400, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, l := newTestService(500, tt.ranks...)
			ctx := context.Background()
			if _, err := s.Deal(ctx, model.BlackjackDeal{Bet: 100}); err != nil {
				t.Fatalf("deal: %v", err)
			}
			tb, err := s.Stand(ctx)
			if err != nil {
				t.Fatalf("stand: %v", err)
			}
			if tb.Outcome != tt.outcome {
				t.Fatalf("expected %s, got %s", tt.outcome, tb.Outcome)
			}
			if l.Balance() != tt.balance {
				t.Fatalf("expected balance %d, got %d", tt.balance, l.Balance())
			}
			if len(tb.DealerDraws) != tt.draws {
				t.Fatalf("expected %d dealer draws, got %d", tt.draws, len(tb.DealerDraws))
			}
			if tb.DealerScore < 17 && tb.Outcome != model.OutcomeDealerBust {
				t.Fatalf("dealer stopped at %d", tb.DealerScore)
			}
		})
	}
}

// TestHiddenDealerCard в ход игрока видна только первая карта дилера
func TestHiddenDealerCard(t *testing.T) {
	s, _ := newTestService(500, "10", "6", "9", "7")
	tb, err := s.Deal(context.Background(), model.BlackjackDeal{Bet: 10})
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if len(tb.DealerHand) != 1 || tb.DealerHidden != 1 || tb.DealerScore != 9 {
		t.Fatalf("expected one visible dealer card worth 9, got %v hidden %d score %d", tb.DealerHand, tb.DealerHidden, tb.DealerScore)
	}
}

// TestDealRejected повторная раздача и нехватка средств не меняют стол
func TestDealRejected(t *testing.T) {
	s, l := newTestService(500, "10", "6", "9", "7")
	ctx := context.Background()
	if _, err := s.Deal(ctx, model.BlackjackDeal{Bet: 600}); !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if s.Table().State != model.BlackjackBetting || l.Balance() != 500 {
		t.Fatalf("rejected deal changed state")
	}
	if _, err := s.Deal(ctx, model.BlackjackDeal{Bet: 0}); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := s.Stand(ctx); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for stand while betting, got %v", err)
	}

	if _, err := s.Deal(ctx, model.BlackjackDeal{Bet: 100}); err != nil {
		t.Fatalf("deal: %v", err)
	}
	before := s.Table()
	if _, err := s.Deal(ctx, model.BlackjackDeal{Bet: 100}); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition during player turn, got %v", err)
	}
	after := s.Table()
	if l.Balance() != 400 || len(after.PlayerHand) != len(before.PlayerHand) || after.DeckLeft != before.DeckLeft {
		t.Fatalf("rejected deal changed table")
	}
}

// TestDealAfterSettle новая раздача из завершенного раунда
func TestDealAfterSettle(t *testing.T) {
	s, l := newTestService(500, "10", "8", "10", "8")
	ctx := context.Background()
	_, _ = s.Deal(ctx, model.BlackjackDeal{Bet: 100})
	_, _ = s.Stand(ctx)
	if !s.CanDeal(100) {
		t.Fatalf("expected deal allowed after settle")
	}
	tb, err := s.Deal(ctx, model.BlackjackDeal{Bet: 100})
	if err != nil {
		t.Fatalf("second deal: %v", err)
	}
	if tb.State != model.BlackjackPlayerTurn || tb.Outcome != model.OutcomeNone || len(tb.DealerDraws) != 0 {
		t.Fatalf("expected fresh round, got %s %s", tb.State, tb.Outcome)
	}
	if l.Balance() != 400 {
		t.Fatalf("expected balance 400, got %d", l.Balance())
	}
}
