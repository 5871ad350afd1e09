package batch

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"DIYCalc/internal/calc/framing"
)

type Handler struct{}

func (h *Handler) Framing(w http.ResponseWriter, r *http.Request) {
	var input FramingBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateFraming(input)
	if err != nil {
		var verr *framing.ValidationError
		if errors.As(err, &verr) || errors.Is(err, ErrNoItems) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("batch: %v", err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
