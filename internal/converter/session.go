package converter

import (
	"house_fund/internal/api/dto/session"
	"house_fund/internal/model"
)

func ToSessionResponse(s model.Session) session.SessionResponse {
	return session.SessionResponse{
		Balance:     s.Balance,
		Goal:        s.Goal,
		GoalReached: s.GoalReached,
		VIP:         s.VIP,
		Threat:      s.Threat,
		Story:       ToStoryResponse(s.Story),
	}
}

func ToRounds(rounds []model.Round) []session.Round {
	result := make([]session.Round, len(rounds))
	for i, r := range rounds {
		result[i] = session.Round{
			ID:        r.ID.String(),
			Game:      string(r.Game),
			Stake:     r.Stake,
			Payout:    r.Payout,
			Outcome:   r.Outcome,
			Balance:   r.Balance,
			SettledAt: r.SettledAt,
		}
	}
	return result
}

func ToGameStats(stats []model.GameStats) []session.GameStats {
	result := make([]session.GameStats, len(stats))
	for i, s := range stats {
		result[i] = session.GameStats{
			Game:        string(s.Game),
			Rounds:      s.Rounds,
			TotalStake:  s.TotalStake,
			TotalPayout: s.TotalPayout,
			RTP:         s.RTP,
			WindowRTP:   s.WindowRTP,
		}
	}
	return result
}
