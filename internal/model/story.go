package model

// StoryScene Сцена сюжета. Next = nil, если у сцены нет продолжения
type StoryScene struct {
	ID      int
	Trigger int
	Speaker string
	Text    string
	Action  string
	Next    *int
}

// StoryView Наблюдаемое состояние сюжета
type StoryView struct {
	Progress int
	Scene    *StoryScene
	Hidden   bool
	Threat   string
}

// ThreatLevel Текст угрозы, пока прогресс сюжета меньше Below.
// Below = 0 - текст по умолчанию
type ThreatLevel struct {
	Below int
	Text  string
}
