package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"DIYCalc/internal/calc/framing"
	"DIYCalc/internal/catalog"

	"github.com/phpdave11/gofpdf"
)

type NotesInput struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Handler serves printable documents. BaseURL is prefixed to calculator
// paths for the QR code and footer link; Now defaults to time.Now.
type Handler struct {
	BaseURL string
	Now     func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) framingURL() string {
	if h.BaseURL == "" {
		return ""
	}
	return strings.TrimRight(h.BaseURL, "/") + catalog.CalculatorURL(catalog.FramingCategory, FramingCalculatorName)
}

func (h *Handler) framingDocument(w http.ResponseWriter, r *http.Request) (Document, bool) {
	var spec framing.ProjectSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Document{}, false
	}
	res, err := framing.Calculate(spec)
	if err != nil {
		framing.WriteError(w, err)
		return Document{}, false
	}
	doc, err := FramingDocument(res, h.framingURL(), h.now())
	if errors.Is(err, ErrNotReady) {
		http.Error(w, "Please enter the required dimensions before printing", http.StatusUnprocessableEntity)
		return Document{}, false
	}
	if err != nil {
		log.Printf("report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return Document{}, false
	}
	return doc, true
}

// Generate returns the framing estimate as a PDF attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.framingDocument(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, doc); err != nil {
		log.Printf("report: pdf: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"framing-estimate.pdf\"")
	buf.WriteTo(w)
}

// Print returns the framing estimate as a print-ready HTML page.
func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.framingDocument(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		log.Printf("report: html: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// Notes renders a free-form project notes sheet with the site letterhead.
func (h *Handler) Notes(w http.ResponseWriter, r *http.Request) {
	var input NotesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := WriteNotesPDF(&buf, input, h.now()); err != nil {
		log.Printf("report: notes: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"project-notes.pdf\"")
	buf.WriteTo(w)
}

func WriteNotesPDF(w io.Writer, in NotesInput, now time.Time) error {
	if in.Title == "" {
		in.Title = "Project Notes"
	}
	doc := newDocument(in.Title, "", now)
	doc.Title = in.Title
	doc.Disclaimer = ""

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.AddPage()
	renderHeader(pdf, doc)
	renderSection(pdf, Section{
		Title: "Project",
		Rows: []Row{
			{Label: "Project", Value: in.Project},
			{Label: "Author", Value: in.Author},
		},
	})
	pdf.SetFont("Helvetica", "", 11)
	setText(pdf, ink)
	pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	renderClosing(pdf, doc)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: build notes pdf: %w", err)
	}
	return pdf.Output(w)
}
