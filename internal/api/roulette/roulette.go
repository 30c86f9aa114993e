package roulette

import (
	"net/http"

	"house_fund/internal/api/apierr"
	dto "house_fund/internal/api/dto/roulette"
	"house_fund/internal/converter"
	"house_fund/internal/service"
	"house_fund/pkg/req"
	"house_fund/pkg/resp"
)

type HandlerDeps struct {
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteStateResponse(h.serv.View()))
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.PlaceBet(r.Context(), converter.ToRouletteBet(payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteStateResponse(*view))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Spin(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteStateResponse(*view))
}
