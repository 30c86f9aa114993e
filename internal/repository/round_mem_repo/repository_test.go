package round_mem_repo

import (
	"context"
	"testing"

	"house_fund/internal/model"
)

// TestListRounds новые раунды первыми, лимит соблюдается
func TestListRounds(t *testing.T) {
	ctx := context.Background()
	r := NewRoundRepository()
	for i := 1; i <= 3; i++ {
		if err := r.SaveRound(ctx, model.Round{Game: model.GameSlots, Stake: i}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	all, err := r.ListRounds(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Stake != 3 || all[2].Stake != 1 {
		t.Fatalf("expected newest first, got %v", all)
	}

	two, _ := r.ListRounds(ctx, 2)
	if len(two) != 2 || two[1].Stake != 2 {
		t.Fatalf("expected two newest, got %v", two)
	}
}

// TestCapacity журнал хранит не больше maxRounds
func TestCapacity(t *testing.T) {
	ctx := context.Background()
	r := NewRoundRepository()
	for i := 0; i < maxRounds+10; i++ {
		_ = r.SaveRound(ctx, model.Round{Stake: i})
	}
	all, _ := r.ListRounds(ctx, 0)
	if len(all) != maxRounds {
		t.Fatalf("expected %d rounds, got %d", maxRounds, len(all))
	}
	if all[len(all)-1].Stake != 10 {
		t.Fatalf("expected oldest kept stake 10, got %d", all[len(all)-1].Stake)
	}
}
