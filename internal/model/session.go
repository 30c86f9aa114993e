package model

// Session Сводка по сессии игрока
type Session struct {
	Balance     int
	Goal        int
	GoalReached bool
	VIP         bool
	Threat      string
	Story       StoryView
}
