package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"house_fund/internal/model"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{model.ErrInsufficientFunds, http.StatusPaymentRequired},
		{fmt.Errorf("spin: %w", model.ErrInsufficientFunds), http.StatusPaymentRequired},
		{model.ErrInvalidTransition, http.StatusConflict},
		{model.ErrEmptyBetSlip, http.StatusConflict},
		{model.ErrNoHorseSelected, http.StatusConflict},
		{model.ErrInvalidAmount, http.StatusBadRequest},
		{model.ErrUnknownBetType, http.StatusBadRequest},
		{model.ErrUnknownHorse, http.StatusBadRequest},
		{model.ErrUnknownPart, http.StatusBadRequest},
		{model.ErrUnknownScreen, http.StatusNotFound},
		{errors.New("db is down"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := Status(c.err); got != c.want {
			t.Fatalf("%v: expected %d, got %d", c.err, c.want, got)
		}
	}
}
