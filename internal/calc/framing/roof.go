package framing

import "math"

// ComputeRoofFraming estimates rafters, ridge, hip members and roof sheathing.
//
// Hip roofs use a 45 degree plan approximation: four hip rafters of
// rafterLength*sqrt(2), jack rafters counted from the building width at the
// rafter spacing on both ends and taken at their average length (half a
// common rafter), and a ridge shortened by the building width.
func ComputeRoofFraming(spec ProjectSpec) (Result, error) {
	spec.Mode = ModeRoof
	if err := Validate(spec); err != nil {
		return Result{}, err
	}
	res := Result{Mode: ModeRoof, Roof: &RoofResult{
		WasteFactorPercent: spec.WasteFactorPercent,
		LumberSize:         lumberSize(spec),
		Sheathed:           spec.IncludeSheathing,
	}}
	if spec.BuildingWidth <= 0 || spec.BuildingLength <= 0 {
		return res, nil
	}
	r := res.Roof

	r.PitchMultiplier = spec.RoofPitch.Multiplier()
	r.RafterLength = (spec.BuildingWidth/2)*r.PitchMultiplier + spec.Overhang

	perSide := int(math.Floor(spec.BuildingLength*12/float64(spec.Spacing))) + 1
	r.CommonRafterCount = perSide * 2
	r.RafterLinearFeet = float64(r.CommonRafterCount) * r.RafterLength

	switch spec.RoofType {
	case RoofHip:
		r.HipRafterCount = hipRafters
		r.HipRafterLength = r.RafterLength * math.Sqrt2
		r.HipLinearFeet = float64(r.HipRafterCount) * r.HipRafterLength
		r.JackRafterCount = int(math.Floor(spec.BuildingWidth*12/float64(spec.Spacing))) * 2
		r.JackRafterLinearFeet = float64(r.JackRafterCount) * r.RafterLength / 2
		r.RidgeLinearFeet = math.Max(0, spec.BuildingLength-spec.BuildingWidth)
	default:
		r.RidgeLinearFeet = spec.BuildingLength
	}
	r.RafterCount = r.CommonRafterCount + r.HipRafterCount + r.JackRafterCount

	r.RawLinearFeet = r.RafterLinearFeet + r.JackRafterLinearFeet + r.HipLinearFeet + r.RidgeLinearFeet
	r.WasteAdjustedLinearFeet = WasteAdjusted(r.RawLinearFeet, spec.WasteFactorPercent)

	r.RoofArea = spec.BuildingLength * spec.BuildingWidth * r.PitchMultiplier
	if spec.IncludeSheathing {
		r.SheathingSheets = SheetCount(r.RoofArea)
	}
	r.Costs = costs(spec, r.WasteAdjustedLinearFeet, r.SheathingSheets)

	res.Ready = true
	return res, nil
}
