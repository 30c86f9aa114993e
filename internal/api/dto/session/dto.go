package session

import (
	"time"

	"house_fund/internal/api/dto/story"
)

type SessionResponse struct {
	Balance     int                 `json:"balance"`
	Goal        int                 `json:"goal"`
	GoalReached bool                `json:"goal_reached"`
	VIP         bool                `json:"vip"`
	Threat      string              `json:"threat"`
	Story       story.StoryResponse `json:"story"`
}

type Round struct {
	ID        string    `json:"id"`
	Game      string    `json:"game"`
	Stake     int       `json:"stake"`
	Payout    int       `json:"payout"`
	Outcome   string    `json:"outcome"`
	Balance   int       `json:"balance"`
	SettledAt time.Time `json:"settled_at"`
}

type GameStats struct {
	Game        string  `json:"game"`
	Rounds      int     `json:"rounds"`
	TotalStake  int     `json:"total_stake"`
	TotalPayout int     `json:"total_payout"`
	RTP         float64 `json:"rtp"`
	WindowRTP   float64 `json:"window_rtp"`
}
