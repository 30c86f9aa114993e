package slots

import (
	"net/http"

	"house_fund/internal/api/apierr"
	dto "house_fund/internal/api/dto/slots"
	"house_fund/internal/converter"
	"house_fund/internal/service"
	"house_fund/pkg/req"
	"house_fund/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotsService
}

type Handler struct {
	serv service.SlotsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsStateResponse(h.serv.View()))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSlotSpin(payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response := converter.ToSlotSpinResponse(*result)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}
