package framing

import "math"

// ComputeWallFraming estimates studs, plates, headers and sheathing for a
// single wall run. A wall with no length or height yet is not an error: the
// result comes back with Ready false and a zeroed WallResult.
func ComputeWallFraming(spec ProjectSpec) (Result, error) {
	spec.Mode = ModeWall
	if err := Validate(spec); err != nil {
		return Result{}, err
	}
	res := Result{Mode: ModeWall, Wall: &WallResult{
		WasteFactorPercent: spec.WasteFactorPercent,
		LumberSize:         lumberSize(spec),
		Sheathed:           spec.IncludeSheathing,
	}}
	if spec.Length <= 0 || spec.Height <= 0 {
		return res, nil
	}
	w := res.Wall

	// The closing end stud of the layout is one of the two corner studs.
	w.StudCount = int(math.Floor(spec.Length*12/float64(spec.Spacing))) + cornerStuds

	topPlates := 1.0
	if spec.WallType == WallExterior {
		topPlates = 2
	}
	w.PlateLinearFeet = spec.Length + spec.Length*topPlates

	for _, o := range spec.Openings {
		w.HeaderLinearFeet += (o.Width + headerAllowance) * float64(o.Count)
		w.KingStudCount += studsPerOpening * o.Count
		w.JackStudCount += studsPerOpening * o.Count
		w.OpeningArea += o.Area()
	}
	w.TotalStudCount = w.StudCount + w.KingStudCount + w.JackStudCount
	w.StudLinearFeet = float64(w.TotalStudCount) * spec.Height

	w.RawLinearFeet = w.StudLinearFeet + w.PlateLinearFeet + w.HeaderLinearFeet
	w.WasteAdjustedLinearFeet = WasteAdjusted(w.RawLinearFeet, spec.WasteFactorPercent)

	w.WallArea = spec.Length * spec.Height
	if spec.IncludeSheathing {
		// Openings larger than the wall clamp the area at zero instead of failing.
		w.SheathingArea = math.Max(0, w.WallArea-w.OpeningArea)
		w.SheathingSheets = SheetCount(w.SheathingArea)
	}
	w.Costs = costs(spec, w.WasteAdjustedLinearFeet, w.SheathingSheets)

	res.Ready = true
	return res, nil
}
