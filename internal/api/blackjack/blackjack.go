package blackjack

import (
	"net/http"

	"house_fund/internal/api/apierr"
	dto "house_fund/internal/api/dto/blackjack"
	"house_fund/internal/converter"
	"house_fund/internal/model"
	"house_fund/internal/service"
	"house_fund/pkg/req"
	"house_fund/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Table(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackTableResponse(h.serv.Table()))
}

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DealRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table, err := h.serv.Deal(r.Context(), converter.ToBlackjackDeal(payload))
	h.write(w, table, err)
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	table, err := h.serv.Hit(r.Context())
	h.write(w, table, err)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	table, err := h.serv.Stand(r.Context())
	h.write(w, table, err)
}

func (h *Handler) write(w http.ResponseWriter, table *model.BlackjackTable, err error) {
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackTableResponse(*table))
}
