package horse

import (
	"net/http"

	"house_fund/internal/api/apierr"
	dto "house_fund/internal/api/dto/horse"
	"house_fund/internal/converter"
	"house_fund/internal/model"
	"house_fund/internal/service"
	"house_fund/pkg/req"
	"house_fund/pkg/resp"
)

type HandlerDeps struct {
	Serv service.HorseService
}

type Handler struct {
	serv service.HorseService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRaceResponse(h.serv.View()))
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SelectRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.serv.SelectHorse(r.Context(), payload.HorseID)
	h.write(w, view, err)
}

func (h *Handler) Wager(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WagerRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.serv.SetWager(r.Context(), payload.Amount)
	h.write(w, view, err)
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.StartRace(r.Context())
	h.write(w, view, err)
}

func (h *Handler) write(w http.ResponseWriter, view *model.RaceView, err error) {
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRaceResponse(*view))
}
