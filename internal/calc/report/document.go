package report

import (
	"errors"
	"fmt"
	"math"
	"time"

	"DIYCalc/internal/calc/framing"

	"github.com/google/uuid"
)

const (
	SiteName   = "DIYCalculatorPro"
	Subtitle   = SiteName + " - Professional Grade Tools"
	FooterLine = "Results calculated using industry-standard formulas and best practices"
	Disclaimer = "These calculations are estimates based on standard formulas and assumptions. " +
		"Always verify calculations with a qualified professional before ordering materials or beginning construction. " +
		"Material requirements may vary based on specific project conditions, local building codes, and material specifications."

	FramingCalculatorName = "Framing Material Estimator"
	dateLayout            = "Monday, January 2, 2006"
)

var ErrNotReady = errors.New("report: result has no values yet")

type Row struct {
	Label     string
	Value     string
	Highlight bool
}

type Section struct {
	Title string
	Rows  []Row
}

// Document is a rendered-agnostic printable result: the PDF and HTML
// writers both consume it.
type Document struct {
	ID         string
	Title      string
	Subtitle   string
	Generated  time.Time
	URL        string
	Sections   []Section
	Disclaimer string
}

func (d Document) GeneratedOn() string {
	return "Generated on " + d.Generated.Format(dateLayout)
}

func newDocument(calculatorName, url string, now time.Time) Document {
	return Document{
		ID:         uuid.New().String()[:8],
		Title:      calculatorName + " Results",
		Subtitle:   Subtitle,
		Generated:  now,
		URL:        url,
		Disclaimer: Disclaimer,
	}
}

// FramingDocument lays out a framing estimate for printing. Quantities are
// rounded here, never in the engine.
func FramingDocument(res framing.Result, url string, now time.Time) (Document, error) {
	if !res.Ready {
		return Document{}, ErrNotReady
	}
	doc := newDocument(FramingCalculatorName, url, now)
	switch {
	case res.Mode == framing.ModeWall && res.Wall != nil:
		doc.Sections = wallSections(*res.Wall)
	case res.Mode == framing.ModeRoof && res.Roof != nil:
		doc.Sections = roofSections(*res.Roof)
	default:
		return Document{}, fmt.Errorf("report: result for mode %q has no %s values", res.Mode, res.Mode)
	}
	return doc, nil
}

// Sheathing sections are left out when the estimate was run without
// sheathing.
func wallSections(w framing.WallResult) []Section {
	sections := []Section{
		{
			Title: "Wall Framing Materials",
			Rows: []Row{
				{Label: "Lumber Size", Value: w.LumberSize},
				{Label: "Number of Studs", Value: pieces(w.StudCount)},
				{Label: "King Studs", Value: pieces(w.KingStudCount)},
				{Label: "Jack Studs", Value: pieces(w.JackStudCount)},
				{Label: "Stud Linear Feet", Value: linearFeet(w.StudLinearFeet)},
				{Label: "Plate Linear Feet", Value: linearFeet(w.PlateLinearFeet)},
				{Label: "Header Linear Feet", Value: linearFeet(w.HeaderLinearFeet)},
				{Label: "Lumber Before Waste", Value: linearFeet(w.RawLinearFeet)},
				{Label: wasteLabel(w.WasteFactorPercent), Value: linearFeet(w.WasteAdjustedLinearFeet), Highlight: true},
			},
		},
	}
	if w.Sheathed {
		sections = append(sections, Section{
			Title: "Wall Sheathing",
			Rows: []Row{
				{Label: "Wall Area", Value: squareFeet(w.WallArea)},
				{Label: "Opening Area", Value: squareFeet(w.OpeningArea)},
				{Label: "Sheathing Area", Value: squareFeet(w.SheathingArea)},
				{Label: "Sheathing Sheets (4x8)", Value: sheets(w.SheathingSheets), Highlight: true},
			},
		})
	}
	return append(sections, costSection(w.Costs))
}

func roofSections(r framing.RoofResult) []Section {
	sections := []Section{
		{
			Title: "Roof Framing Materials",
			Rows: []Row{
				{Label: "Lumber Size", Value: r.LumberSize},
				{Label: "Number of Rafters", Value: pieces(r.RafterCount)},
				{Label: "Common Rafters", Value: pieces(r.CommonRafterCount)},
				{Label: "Hip Rafters", Value: pieces(r.HipRafterCount)},
				{Label: "Jack Rafters", Value: pieces(r.JackRafterCount)},
				{Label: "Rafter Length", Value: fmt.Sprintf("%.2f ft", r.RafterLength)},
				{Label: "Hip Rafter Length", Value: fmt.Sprintf("%.2f ft", r.HipRafterLength)},
				{Label: "Pitch Multiplier", Value: fmt.Sprintf("%.3f", r.PitchMultiplier)},
				{Label: "Rafter Linear Feet", Value: linearFeet(r.RafterLinearFeet + r.JackRafterLinearFeet)},
				{Label: "Hip Linear Feet", Value: linearFeet(r.HipLinearFeet)},
				{Label: "Ridge Linear Feet", Value: linearFeet(r.RidgeLinearFeet)},
				{Label: "Lumber Before Waste", Value: linearFeet(r.RawLinearFeet)},
				{Label: wasteLabel(r.WasteFactorPercent), Value: linearFeet(r.WasteAdjustedLinearFeet), Highlight: true},
			},
		},
	}
	if r.Sheathed {
		sections = append(sections, Section{
			Title: "Roof Sheathing",
			Rows: []Row{
				{Label: "Roof Area", Value: squareFeet(r.RoofArea)},
				{Label: "Sheathing Sheets (4x8)", Value: sheets(r.SheathingSheets), Highlight: true},
			},
		})
	}
	return append(sections, costSection(r.Costs))
}

func costSection(c framing.Costs) Section {
	return Section{
		Title: "Cost Estimate",
		Rows: []Row{
			{Label: "Lumber Cost", Value: money(c.Lumber)},
			{Label: "Sheathing Cost", Value: money(c.Sheathing)},
			{Label: "Total Cost", Value: money(c.Total), Highlight: true},
		},
	}
}

func wasteLabel(pct float64) string {
	return fmt.Sprintf("Total Lumber (with %g%% waste)", pct)
}

func pieces(n int) string {
	return fmt.Sprintf("%d pieces", n)
}

func sheets(n int) string {
	return fmt.Sprintf("%d sheets", n)
}

func linearFeet(v float64) string {
	return fmt.Sprintf("%.0f LF", math.Round(v))
}

func squareFeet(v float64) string {
	return fmt.Sprintf("%.0f sq ft", math.Round(v))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
