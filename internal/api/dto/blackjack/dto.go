package blackjack

type DealRequest struct {
	Bet int `json:"bet"` // Размер ставки
}

type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

type TableResponse struct {
	State        string `json:"state"` // betting, player_turn, dealer_turn, settled
	Bet          int    `json:"bet"`
	PlayerHand   []Card `json:"player_hand"`
	PlayerScore  int    `json:"player_score"`
	DealerHand   []Card `json:"dealer_hand"`
	DealerHidden int    `json:"dealer_hidden"` // Сколько карт дилера скрыто
	DealerScore  int    `json:"dealer_score"`
	DealerDraws  []Card `json:"dealer_draws"` // Добор дилера по порядку
	Outcome      string `json:"outcome,omitempty"`
	Payout       int    `json:"payout"`
	DeckLeft     int    `json:"deck_left"`
	Balance      int    `json:"balance"`
	Delta        int    `json:"delta"`
}
