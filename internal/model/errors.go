package model

import "errors"

var (
	// ErrInsufficientFunds ставка больше текущего баланса
	ErrInsufficientFunds = errors.New("not enough balance")
	// ErrInvalidAmount сумма ставки или начисления вне допустимого диапазона
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidTransition действие недопустимо в текущем состоянии движка
	ErrInvalidTransition = errors.New("action not allowed in current state")
	// ErrUnknownBetType неизвестный тип ставки в рулетке
	ErrUnknownBetType = errors.New("unknown bet type")
	// ErrEmptyBetSlip спин рулетки без ставок
	ErrEmptyBetSlip = errors.New("bet slip is empty")
	// ErrUnknownHorse лошади с таким id нет в забеге
	ErrUnknownHorse = errors.New("unknown horse")
	// ErrNoHorseSelected старт забега без выбранной лошади
	ErrNoHorseSelected = errors.New("no horse selected")
	// ErrUnknownPart детали с таким id нет на машине
	ErrUnknownPart = errors.New("unknown car part")
	// ErrUnknownScreen фон для такого экрана не описан
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrAssetUnavailable генератор изображений не вернул картинку
	ErrAssetUnavailable = errors.New("asset unavailable")
)
