package apierr

import (
	"errors"
	"net/http"

	"house_fund/internal/model"
)

// Status HTTP код для ошибки движка
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrEmptyBetSlip),
		errors.Is(err, model.ErrNoHorseSelected):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrUnknownBetType),
		errors.Is(err, model.ErrUnknownHorse),
		errors.Is(err, model.ErrUnknownPart):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnknownScreen):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Write Ответить ошибкой с подходящим кодом
func Write(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), Status(err))
}
