package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse Записать ответ в JSON с кодом status
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
