package story

import (
	"net/http"

	"house_fund/internal/api/apierr"
	"house_fund/internal/converter"
	"house_fund/internal/service"
	"house_fund/pkg/resp"
)

type HandlerDeps struct {
	Serv service.StoryService
}

type Handler struct {
	serv service.StoryService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStoryResponse(h.serv.View()))
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Advance(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStoryResponse(*view))
}

// Dismiss Скрыть окно сцены. На сюжет и игры не влияет
func (h *Handler) Dismiss(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStoryResponse(h.serv.Dismiss()))
}

func (h *Handler) Resume(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStoryResponse(h.serv.Resume()))
}
