package sitemap

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"DIYCalc/internal/catalog"
)

type Handler struct {
	BaseURL string
	Catalog *catalog.Catalog
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := WriteXML(&buf, Generate(h.BaseURL, h.Catalog, time.Now())); err != nil {
		log.Printf("sitemap: %v", err)
		http.Error(w, "Sitemap error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	buf.WriteTo(w)
}
