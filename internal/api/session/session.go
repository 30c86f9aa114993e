package session

import (
	"net/http"
	"strconv"

	"house_fund/internal/converter"
	"house_fund/internal/service"
	"house_fund/pkg/resp"
)

const defaultHistoryLimit = 50

type HandlerDeps struct {
	Serv service.SessionService
}

type Handler struct {
	serv service.SessionService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Session(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(h.serv.Session()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStats(h.serv.Stats()))
}

// History Последние раунды, ?limit=N
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	rounds, err := h.serv.History(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRounds(rounds))
}
