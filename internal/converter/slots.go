package converter

import (
	"house_fund/internal/api/dto/slots"
	"house_fund/internal/model"
)

func ToSlotSpin(req slots.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet: req.Bet,
	}
}

func ToSlotSpinResponse(res model.SlotSpinResult) slots.SpinResponse {
	var reels [3]slots.Symbol
	for i, s := range res.Reels {
		reels[i] = toSlotSymbol(s)
	}
	return slots.SpinResponse{
		RoundID: res.RoundID.String(),
		Reels:   reels,
		Bet:     res.Bet,
		Win:     string(res.Win),
		Payout:  res.Payout,
		Balance: res.Balance,
		Delta:   res.Delta,
	}
}

func ToSlotsStateResponse(view model.SlotsView) slots.StateResponse {
	symbols := make([]slots.Symbol, len(view.Symbols))
	for i, s := range view.Symbols {
		symbols[i] = toSlotSymbol(s)
	}
	response := slots.StateResponse{
		State:      string(view.State),
		Symbols:    symbols,
		DefaultBet: view.DefaultBet,
		Balance:    view.Balance,
	}
	if view.Last != nil {
		last := ToSlotSpinResponse(*view.Last)
		response.Last = &last
	}
	return response
}

func toSlotSymbol(s model.SlotSymbol) slots.Symbol {
	return slots.Symbol{
		ID:         s.ID,
		Glyph:      s.Glyph,
		Multiplier: s.Multiplier,
	}
}
