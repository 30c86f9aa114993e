package scrapyard

import (
	"net/http"

	"house_fund/internal/api/apierr"
	dto "house_fund/internal/api/dto/scrapyard"
	"house_fund/internal/converter"
	"house_fund/internal/model"
	"house_fund/internal/service"
	"house_fund/pkg/req"
	"house_fund/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ScrapYardService
}

type Handler struct {
	serv service.ScrapYardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToYardResponse(h.serv.View()))
}

func (h *Handler) Strike(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StrikeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.serv.Strike(r.Context(), payload.PartID)
	h.write(w, view, err)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Restart(r.Context())
	h.write(w, view, err)
}

func (h *Handler) write(w http.ResponseWriter, view *model.ScrapYardView, err error) {
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToYardResponse(*view))
}
