package importer

import (
	"fmt"
	"io"

	"DIYCalc/internal/calc/framing"

	"github.com/xuri/excelize/v2"
)

const resultSheet = "Estimates"

var resultHeader = []any{
	"#", "Mode", "Type", "Ready", "Pieces", "Raw LF", "LF with waste", "Sheets",
	"Lumber cost", "Sheathing cost", "Total cost",
}

// WriteWorkbook writes one row per estimate. specs and results are matched
// by index.
func WriteWorkbook(w io.Writer, specs []framing.ProjectSpec, results []framing.Result) error {
	if len(specs) != len(results) {
		return fmt.Errorf("have %d specs but %d results", len(specs), len(results))
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(resultSheet, "A1", &resultHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(resultSheet, "A1", "K1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(resultSheet, "B", "K", 14); err != nil {
		return err
	}

	for i, res := range results {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := resultRow(i+1, specs[i], res)
		if err := f.SetSheetRow(resultSheet, cellRef, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func resultRow(n int, spec framing.ProjectSpec, res framing.Result) []any {
	row := []any{n, string(res.Mode)}
	switch {
	case res.Wall != nil:
		w := res.Wall
		return append(row, string(spec.WallType), res.Ready, w.TotalStudCount, w.RawLinearFeet,
			w.WasteAdjustedLinearFeet, w.SheathingSheets, w.Costs.Lumber, w.Costs.Sheathing, w.Costs.Total)
	case res.Roof != nil:
		r := res.Roof
		return append(row, string(spec.RoofType), res.Ready, r.RafterCount, r.RawLinearFeet,
			r.WasteAdjustedLinearFeet, r.SheathingSheets, r.Costs.Lumber, r.Costs.Sheathing, r.Costs.Total)
	}
	return append(row, "", res.Ready)
}
