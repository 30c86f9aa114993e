package converter

import (
	"house_fund/internal/api/dto/roulette"
	"house_fund/internal/model"
)

func ToRouletteBet(req roulette.BetRequest) model.RouletteBet {
	return model.RouletteBet{
		Type:   model.BetType(req.Type),
		Amount: req.Amount,
	}
}

func ToRouletteStateResponse(view model.RouletteView) roulette.StateResponse {
	response := roulette.StateResponse{
		State:      string(view.State),
		Slip:       toBetMap(view.Slip),
		SlipSum:    view.SlipSum,
		Rotation:   view.Rotation,
		DefaultBet: view.DefaultBet,
		Balance:    view.Balance,
		Delta:      view.Delta,
	}
	if view.Last != nil {
		response.Last = &roulette.SpinResult{
			Index: view.Last.Index,
			Pocket: roulette.Pocket{
				Number: view.Last.Pocket.Number,
				Color:  string(view.Last.Pocket.Color),
			},
			Rotation: view.Last.Rotation,
			Stake:    view.Last.Stake,
			Payout:   view.Last.Payout,
			Winning:  toBetMap(view.Last.Winning),
		}
	}
	return response
}

func toBetMap(bets map[model.BetType]int) map[string]int {
	result := make(map[string]int, len(bets))
	for k, v := range bets {
		result[string(k)] = v
	}
	return result
}
