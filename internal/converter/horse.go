package converter

import (
	"house_fund/internal/api/dto/horse"
	"house_fund/internal/model"
)

func ToRaceResponse(view model.RaceView) horse.RaceResponse {
	horses := make([]horse.Horse, len(view.Horses))
	for i, h := range view.Horses {
		horses[i] = horse.Horse{
			ID:    h.ID,
			Name:  h.Name,
			Odds:  h.Odds,
			Speed: h.Speed,
		}
	}
	response := horse.RaceResponse{
		State:    string(view.State),
		Horses:   horses,
		Selected: view.Selected,
		Wager:    view.Wager,
		Progress: view.Progress,
		Balance:  view.Balance,
		Delta:    view.Delta,
	}
	if view.Last != nil {
		response.Last = &horse.RaceResult{
			WinnerID: view.Last.WinnerID,
			PlayerID: view.Last.PlayerID,
			Wager:    view.Last.Wager,
			Payout:   view.Last.Payout,
			Ticks:    view.Last.Ticks,
			Frames:   view.Last.Frames,
		}
	}
	return response
}
