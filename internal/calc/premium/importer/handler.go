package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"DIYCalc/internal/calc/framing"
	"DIYCalc/internal/calc/premium/batch"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxUpload bounds the multipart form kept in memory.
const maxUpload = 10 << 20

type Handler struct{}

type FramingImportResult struct {
	batch.FramingBatchResult
	Errors []RowError `json:"errors,omitempty"`
}

// Framing estimates every row of an uploaded workbook. Rows that cannot be
// parsed are reported next to the results instead of failing the upload.
func (h *Handler) Framing(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	specs, rowErrs, err := ReadFramingWorkbook(file)
	if err != nil {
		log.Printf("importer: %v", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	if len(specs) == 0 && len(rowErrs) == 0 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := FramingImportResult{Errors: rowErrs}
	if len(specs) > 0 {
		res, err := batch.CalculateFraming(batch.FramingBatchInput{Items: specs})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out.FramingBatchResult = res
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Export estimates a JSON batch and returns the results as a workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.FramingBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.CalculateFraming(input)
	if err != nil {
		var verr *framing.ValidationError
		if errors.As(err, &verr) || errors.Is(err, batch.ErrNoItems) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, input.Items, res.Results); err != nil {
		log.Printf("importer: export: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"framing-estimates.xlsx\"")
	buf.WriteTo(w)
}
