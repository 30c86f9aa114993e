package converter

import (
	"house_fund/internal/api/dto/scrapyard"
	"house_fund/internal/model"
)

func ToYardResponse(view model.ScrapYardView) scrapyard.YardResponse {
	parts := make([]scrapyard.Part, len(view.Parts))
	for i, p := range view.Parts {
		parts[i] = scrapyard.Part{
			ID:     p.ID,
			Name:   p.Name,
			Health: p.Health,
			X:      p.X,
			Y:      p.Y,
		}
	}
	return scrapyard.YardResponse{
		State:   string(view.State),
		Parts:   parts,
		Removed: view.Removed,
		Reward:  view.Reward,
		Balance: view.Balance,
		Delta:   view.Delta,
	}
}
