package model

// CarPart Деталь машины на свалке
type CarPart struct {
	ID     string
	Name   string
	Health int
	X      int // Позиция на экране в процентах
	Y      int
}

// ScrapYardState Фаза работы на свалке
type ScrapYardState string

const (
	ScrapYardActive ScrapYardState = "active"
	ScrapYardDone   ScrapYardState = "done"
)

// ScrapYardView Наблюдаемое состояние свалки
type ScrapYardView struct {
	State   ScrapYardState
	Parts   []CarPart
	Removed int
	Reward  int
	Balance int
	Delta   int
}
