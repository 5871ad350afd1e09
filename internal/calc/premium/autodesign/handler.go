package autodesign

import (
	"encoding/json"
	"net/http"

	"DIYCalc/internal/calc/framing"
)

type Handler struct{}

func (h *Handler) Framing(w http.ResponseWriter, r *http.Request) {
	var input framing.ProjectSpec
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CompareSpacing(input)
	if err != nil {
		framing.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
