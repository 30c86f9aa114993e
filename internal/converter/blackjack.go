package converter

import (
	"house_fund/internal/api/dto/blackjack"
	"house_fund/internal/model"
)

func ToBlackjackDeal(req blackjack.DealRequest) model.BlackjackDeal {
	return model.BlackjackDeal{
		Bet: req.Bet,
	}
}

func ToBlackjackTableResponse(t model.BlackjackTable) blackjack.TableResponse {
	return blackjack.TableResponse{
		State:        string(t.State),
		Bet:          t.Bet,
		PlayerHand:   toCards(t.PlayerHand),
		PlayerScore:  t.PlayerScore,
		DealerHand:   toCards(t.DealerHand),
		DealerHidden: t.DealerHidden,
		DealerScore:  t.DealerScore,
		DealerDraws:  toCards(t.DealerDraws),
		Outcome:      string(t.Outcome),
		Payout:       t.Payout,
		DeckLeft:     t.DeckLeft,
		Balance:      t.Balance,
		Delta:        t.Delta,
	}
}

func toCards(cards []model.Card) []blackjack.Card {
	result := make([]blackjack.Card, len(cards))
	for i, c := range cards {
		result[i] = blackjack.Card{
			Suit:  string(c.Suit),
			Rank:  c.Rank,
			Value: c.Value(),
		}
	}
	return result
}
