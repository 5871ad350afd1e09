package framing

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const (
	// SheetArea is the coverage of one 4x8 sheathing panel in square feet.
	SheetArea = 32.0

	MinWallHeight    = 6.0
	MaxDimension     = 1000.0
	MaxOpeningCount  = 100
	MaxOverhang      = 4.0
	MaxWastePercent  = 25.0
	cornerStuds      = 2
	hipRafters       = 4
	headerAllowance  = 0.5
	studsPerOpening  = 2
	defaultLumberDim = "2x4"
)

// ValidationError reports an input that is present but out of range.
// Missing required dimensions are not validation errors; they produce a
// result with Ready set to false.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Calculate runs the calculator selected by spec.Mode.
func Calculate(spec ProjectSpec) (Result, error) {
	switch spec.Mode {
	case ModeWall:
		return ComputeWallFraming(spec)
	case ModeRoof:
		return ComputeRoofFraming(spec)
	default:
		return Result{}, invalid("mode", "unknown mode %q", spec.Mode)
	}
}

// Validate checks the fields shared by both modes and the fields of the
// active mode.
func Validate(spec ProjectSpec) error {
	if !spec.Spacing.Valid() {
		return invalid("spacing", "must be 16 or 24 inches, got %d", spec.Spacing)
	}
	if !inRange(spec.WasteFactorPercent, 0, MaxWastePercent) {
		return invalid("waste_factor_percent", "must be between 0 and %g", MaxWastePercent)
	}
	if !inRange(spec.LumberCostPerLinearFoot, 0, math.MaxFloat64) {
		return invalid("lumber_cost_per_linear_foot", "must be a non-negative number")
	}
	if !inRange(spec.SheathingCostPerSheet, 0, math.MaxFloat64) {
		return invalid("sheathing_cost_per_sheet", "must be a non-negative number")
	}
	switch spec.Mode {
	case ModeWall:
		return validateWall(spec)
	case ModeRoof:
		return validateRoof(spec)
	default:
		return invalid("mode", "unknown mode %q", spec.Mode)
	}
}

func validateWall(spec ProjectSpec) error {
	if spec.WallType != WallExterior && spec.WallType != WallInterior {
		return invalid("wall_type", "unknown wall type %q", spec.WallType)
	}
	if !inRange(spec.Length, 0, MaxDimension) {
		return invalid("length", "must be between 0 and %g ft", MaxDimension)
	}
	if !inRange(spec.Height, 0, MaxDimension) {
		return invalid("height", "must be between %g and %g ft", MinWallHeight, MaxDimension)
	}
	if spec.Height > 0 && spec.Height < MinWallHeight {
		return invalid("height", "must be at least %g ft", MinWallHeight)
	}
	for i, o := range spec.Openings {
		if o.Kind != OpeningWindow && o.Kind != OpeningDoor {
			return invalid(fmt.Sprintf("openings[%d].kind", i), "unknown opening kind %q", o.Kind)
		}
		if !inRange(o.Width, 0, MaxDimension) || !inRange(o.Height, 0, MaxDimension) {
			return invalid(fmt.Sprintf("openings[%d]", i), "dimensions must be between 0 and %g ft", MaxDimension)
		}
		if o.Count < 1 || o.Count > MaxOpeningCount {
			return invalid(fmt.Sprintf("openings[%d].count", i), "must be between 1 and %d", MaxOpeningCount)
		}
	}
	return nil
}

func validateRoof(spec ProjectSpec) error {
	if spec.RoofType != RoofGable && spec.RoofType != RoofHip {
		return invalid("roof_type", "unknown roof type %q", spec.RoofType)
	}
	if !inRange(spec.BuildingWidth, 0, MaxDimension) {
		return invalid("building_width", "must be between 0 and %g ft", MaxDimension)
	}
	if !inRange(spec.BuildingLength, 0, MaxDimension) {
		return invalid("building_length", "must be between 0 and %g ft", MaxDimension)
	}
	if !(spec.RoofPitch.Run > 0 && spec.RoofPitch.Run <= math.MaxFloat64) || !inRange(spec.RoofPitch.Rise, 0, math.MaxFloat64) {
		return invalid("roof_pitch", "need a non-negative rise and a positive run, got %q", spec.RoofPitch.String())
	}
	if !inRange(spec.Overhang, 0, MaxOverhang) {
		return invalid("overhang", "must be between 0 and %g ft", MaxOverhang)
	}
	return nil
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// SheetCount is the number of 4x8 sheets needed to cover area square feet.
func SheetCount(area float64) int {
	if area <= 0 {
		return 0
	}
	return int(math.Ceil(area / SheetArea))
}

func WasteAdjusted(raw, wastePercent float64) float64 {
	return raw * (1 + wastePercent/100)
}

func costs(spec ProjectSpec, wasteAdjusted float64, sheets int) Costs {
	c := Costs{Lumber: wasteAdjusted * spec.LumberCostPerLinearFoot}
	if spec.IncludeSheathing {
		c.Sheathing = float64(sheets) * spec.SheathingCostPerSheet
	}
	c.Total = c.Lumber + c.Sheathing
	return c
}

func lumberSize(spec ProjectSpec) string {
	if spec.LumberSize == "" {
		return defaultLumberDim
	}
	return spec.LumberSize
}

// NewOpening creates an opening group with a short random ID.
func NewOpening(kind OpeningKind, width, height float64, count int) Opening {
	return Opening{
		ID:     uuid.New().String()[:8],
		Kind:   kind,
		Width:  width,
		Height: height,
		Count:  count,
	}
}
