package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"DIYCalc/internal/calc/framing"

	"github.com/xuri/excelize/v2"
)

// Column layout of an estimate sheet. The first row is a header and is
// skipped. Columns from Spacing on are optional.
const (
	colMode = iota
	colType
	colLength
	colHeightOrWidth
	colSpacing
	colWaste
	colLumberCost
	colSheathing
	colSheathingCost
	colPitch
	colOverhang
	colLumberSize
	colOpenings
	requiredCols = colHeightOrWidth + 1
)

// RowError reports a spreadsheet row (1-based, as shown in the sheet) that
// could not be turned into a ProjectSpec.
type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

// ReadFramingWorkbook reads the first sheet of an xlsx workbook.
func ReadFramingWorkbook(r io.Reader) ([]framing.ProjectSpec, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	specs, rowErrs := ParseFramingRows(rows)
	return specs, rowErrs, nil
}

// ParseFramingRows converts sheet rows into specs. Blank rows are ignored.
func ParseFramingRows(rows [][]string) ([]framing.ProjectSpec, []RowError) {
	var specs []framing.ProjectSpec
	var rowErrs []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		spec, err := parseFramingRow(row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Err: err.Error()})
			continue
		}
		specs = append(specs, spec)
	}
	return specs, rowErrs
}

func parseFramingRow(row []string) (framing.ProjectSpec, error) {
	if len(row) < requiredCols {
		return framing.ProjectSpec{}, fmt.Errorf("expected at least %d columns, got %d", requiredCols, len(row))
	}
	spec := framing.ProjectSpec{
		Spacing:            framing.DefaultSpacingInches,
		WasteFactorPercent: framing.DefaultWastePercent,
		RoofPitch:          framing.DefaultPitch,
		Overhang:           framing.DefaultOverhang,
		LumberSize:         "2x4",
	}

	length, err := toFloat(row[colLength])
	if err != nil {
		return spec, fmt.Errorf("length: %w", err)
	}
	second, err := toFloat(row[colHeightOrWidth])
	if err != nil {
		return spec, fmt.Errorf("height or width: %w", err)
	}

	kind := strings.ToLower(cell(row, colType))
	switch strings.ToLower(cell(row, colMode)) {
	case string(framing.ModeWall):
		spec.Mode = framing.ModeWall
		spec.WallType = framing.WallType(kind)
		if kind == "" {
			spec.WallType = framing.WallExterior
		}
		spec.Length, spec.Height = length, second
	case string(framing.ModeRoof):
		spec.Mode = framing.ModeRoof
		spec.RoofType = framing.RoofType(kind)
		if kind == "" {
			spec.RoofType = framing.RoofGable
		}
		spec.BuildingLength, spec.BuildingWidth = length, second
	default:
		return spec, fmt.Errorf("unknown mode %q", cell(row, colMode))
	}

	if s := cell(row, colSpacing); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return spec, fmt.Errorf("spacing: %w", err)
		}
		spec.Spacing = framing.Spacing(v)
	}
	for _, opt := range []struct {
		col  int
		name string
		dst  *float64
	}{
		{colWaste, "waste", &spec.WasteFactorPercent},
		{colLumberCost, "lumber cost", &spec.LumberCostPerLinearFoot},
		{colSheathingCost, "sheathing cost", &spec.SheathingCostPerSheet},
		{colOverhang, "overhang", &spec.Overhang},
	} {
		if s := cell(row, opt.col); s != "" {
			v, err := toFloat(s)
			if err != nil {
				return spec, fmt.Errorf("%s: %w", opt.name, err)
			}
			*opt.dst = v
		}
	}
	switch strings.ToLower(cell(row, colSheathing)) {
	case "yes", "y", "true", "1", "x":
		spec.IncludeSheathing = true
	}
	if s := cell(row, colPitch); s != "" {
		p, err := framing.ParsePitch(s)
		if err != nil {
			return spec, err
		}
		spec.RoofPitch = p
	}
	if s := cell(row, colLumberSize); s != "" {
		spec.LumberSize = s
	}
	if s := cell(row, colOpenings); s != "" {
		if spec.Mode != framing.ModeWall {
			return spec, fmt.Errorf("openings: only wall rows take openings")
		}
		openings, err := parseOpenings(s)
		if err != nil {
			return spec, fmt.Errorf("openings: %w", err)
		}
		spec.Openings = openings
	}
	return spec, nil
}

// parseOpenings reads a list like "window:3x4x2;door:3x6.75" where each group
// is kind:WIDTHxHEIGHT with an optional xCOUNT, defaulting to one.
func parseOpenings(s string) ([]framing.Opening, error) {
	var openings []framing.Opening
	for _, group := range strings.Split(s, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		kind, dims, ok := strings.Cut(group, ":")
		if !ok {
			return nil, fmt.Errorf("%q: want kind:WIDTHxHEIGHT[xCOUNT]", group)
		}
		k := framing.OpeningKind(strings.ToLower(strings.TrimSpace(kind)))
		if k != framing.OpeningWindow && k != framing.OpeningDoor {
			return nil, fmt.Errorf("%q: unknown opening kind %q", group, kind)
		}
		parts := strings.Split(strings.ToLower(dims), "x")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("%q: want kind:WIDTHxHEIGHT[xCOUNT]", group)
		}
		width, err := toFloat(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%q: width: %w", group, err)
		}
		height, err := toFloat(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%q: height: %w", group, err)
		}
		count := 1
		if len(parts) == 3 {
			count, err = strconv.Atoi(strings.TrimSpace(parts[2]))
			if err != nil {
				return nil, fmt.Errorf("%q: count: %w", group, err)
			}
		}
		openings = append(openings, framing.NewOpening(k, width, height, count))
	}
	return openings, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
