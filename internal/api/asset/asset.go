package asset

import (
	"net/http"

	"house_fund/internal/api/apierr"
	"house_fund/internal/converter"
	"house_fund/internal/service"
	"house_fund/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AssetService
}

type Handler struct {
	serv service.AssetService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) SceneImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.serv.SceneImage(r.Context(), chi.URLParam(r, "screen"))
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSceneImageResponse(img))
}
