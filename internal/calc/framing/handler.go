package framing

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input ProjectSpec
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	respond(w, input)
}

// Form accepts the estimator page's form post and applies the same
// defaulting the page does before calculating.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	respond(w, FromForm(r.Form))
}

func respond(w http.ResponseWriter, spec ProjectSpec) {
	res, err := Calculate(spec)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("framing: encode result: %v", err)
	}
}

// WriteError maps a calculation error to an HTTP response. Validation errors
// carry their field and reason back to the caller.
func WriteError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("framing: calculation error: %v", err)
	http.Error(w, "Calculation error", http.StatusBadRequest)
}
