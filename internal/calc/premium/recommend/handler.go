package recommend

import (
	"encoding/json"
	"errors"
	"net/http"

	"DIYCalc/internal/calc/framing"
)

type Handler struct{}

func (h *Handler) Lumber(w http.ResponseWriter, r *http.Request) {
	var input LumberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Lumber(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Framing(w http.ResponseWriter, r *http.Request) {
	var input FramingLumberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Framing(input)
	if err != nil {
		var verr *framing.ValidationError
		if errors.As(err, &verr) {
			framing.WriteError(w, err)
			return
		}
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
