// Command framing estimates wall or roof framing materials from flags or a
// JSON project file and prints, or writes PDF and HTML reports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"DIYCalc/internal/calc/framing"
	"DIYCalc/internal/calc/report"
	"DIYCalc/internal/catalog"
	"DIYCalc/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("framing", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		specPath      = fs.String("spec", "", "JSON project file (- for stdin); overrides the dimension flags")
		mode          = fs.String("mode", "wall", "wall or roof")
		wallType      = fs.String("wall-type", "exterior", "exterior or interior")
		roofType      = fs.String("roof-type", "gable", "gable or hip")
		length        = fs.Float64("length", 0, "wall length or building length (ft)")
		height        = fs.Float64("height", framing.DefaultHeight, "wall height (ft)")
		width         = fs.Float64("width", 0, "building width (ft)")
		pitch         = fs.String("pitch", framing.DefaultPitch.String(), "roof pitch, e.g. 6:12")
		overhang      = fs.Float64("overhang", framing.DefaultOverhang, "eave overhang (ft)")
		spacing       = fs.Int("spacing", int(framing.Spacing16), "stud or rafter spacing (16 or 24 in)")
		size          = fs.String("size", "2x4", "nominal lumber size")
		waste         = fs.Float64("waste", framing.DefaultWastePercent, "waste factor (%)")
		lumberCost    = fs.Float64("lumber-cost", 0, "lumber cost per linear foot")
		sheathing     = fs.Bool("sheathing", false, "include 4x8 sheathing")
		sheathingCost = fs.Float64("sheathing-cost", 0, "cost per sheathing sheet")
		asJSON        = fs.Bool("json", false, "print the raw result as JSON")
		pdfPath       = fs.String("pdf", "", "write a PDF report to this path")
		htmlPath      = fs.String("html", "", "write a printable HTML report to this path")
		baseURL       = fs.String("base-url", config.DefaultBaseURL, "site URL printed and encoded in reports")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var spec framing.ProjectSpec
	if *specPath != "" {
		s, err := readSpec(*specPath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "framing: %v\n", err)
			return 1
		}
		spec = s
	} else {
		p, err := framing.ParsePitch(*pitch)
		if err != nil {
			fmt.Fprintf(stderr, "framing: %v\n", err)
			return 2
		}
		spec = framing.ProjectSpec{
			Mode:                    framing.Mode(*mode),
			WallType:                framing.WallType(*wallType),
			Length:                  *length,
			Height:                  *height,
			RoofType:                framing.RoofType(*roofType),
			BuildingWidth:           *width,
			BuildingLength:          *length,
			RoofPitch:               p,
			Overhang:                *overhang,
			Spacing:                 framing.Spacing(*spacing),
			LumberSize:              *size,
			WasteFactorPercent:      *waste,
			LumberCostPerLinearFoot: *lumberCost,
			IncludeSheathing:        *sheathing,
			SheathingCostPerSheet:   *sheathingCost,
		}
	}

	res, err := framing.Calculate(spec)
	if err != nil {
		fmt.Fprintf(stderr, "framing: %v\n", err)
		return 1
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stderr, "framing: %v\n", err)
			return 1
		}
		return 0
	}

	url := strings.TrimRight(*baseURL, "/") + catalog.CalculatorURL(catalog.FramingCategory, report.FramingCalculatorName)
	doc, err := report.FramingDocument(res, url, time.Now())
	if err != nil {
		fmt.Fprintf(stderr, "framing: %v\n", err)
		return 1
	}
	if err := report.WriteText(stdout, doc); err != nil {
		fmt.Fprintf(stderr, "framing: %v\n", err)
		return 1
	}
	if err := writeFile(*pdfPath, doc, report.WritePDF); err != nil {
		fmt.Fprintf(stderr, "framing: %v\n", err)
		return 1
	}
	if err := writeFile(*htmlPath, doc, report.WriteHTML); err != nil {
		fmt.Fprintf(stderr, "framing: %v\n", err)
		return 1
	}
	return 0
}

func readSpec(path string, stdin io.Reader) (framing.ProjectSpec, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return framing.ProjectSpec{}, err
		}
		defer f.Close()
		r = f
	}
	var spec framing.ProjectSpec
	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return framing.ProjectSpec{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return spec, nil
}

func writeFile(path string, doc report.Document, render func(io.Writer, report.Document) error) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
