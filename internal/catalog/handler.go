package catalog

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *Catalog
}

type categoryView struct {
	Category
	Entries []Calculator `json:"entries"`
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Catalog.Categories)
}

func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	cat, ok := h.Catalog.Category(slug)
	if !ok {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	writeJSON(w, categoryView{Category: cat, Entries: h.Catalog.CalculatorsIn(slug)})
}

func (h *Handler) Calculator(w http.ResponseWriter, r *http.Request) {
	calc, ok := h.Catalog.Calculator(mux.Vars(r)["slug"])
	if !ok {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}
	writeJSON(w, calc)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Catalog.Search(r.URL.Query().Get("q")))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("catalog: encode: %v", err)
	}
}
