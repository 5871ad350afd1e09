package framing

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Form field defaults, as the estimator page pre-fills them.
const (
	DefaultHeight        = 8.0
	DefaultOverhang      = 1.0
	DefaultWastePercent  = 10.0
	DefaultWindowWidth   = 3.0
	DefaultWindowHeight  = 4.0
	DefaultDoorWidth     = 3.0
	DefaultDoorHeight    = 6.75
	DefaultOpeningCount  = 1
	DefaultSpacingInches = Spacing16
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// FromForm builds a ProjectSpec from raw form values.
//
// The policy is intentionally forgiving and matches the estimator page: a
// numeric field is read from its leading number ("12ft" is 12), and a value
// that is missing, unparsable or zero falls back to the field default. That
// means an entered waste factor of 0 becomes 10 and an overhang of 0
// becomes 1. Range checks are left to Validate.
//
// Openings are read from parallel lists: window_count, window_width,
// window_height, and the same for door_.
func FromForm(v url.Values) ProjectSpec {
	spec := ProjectSpec{
		Mode:                    ModeWall,
		WallType:                WallExterior,
		Length:                  floatOr(v.Get("length"), 0),
		Height:                  floatOr(v.Get("height"), DefaultHeight),
		RoofType:                RoofGable,
		BuildingWidth:           floatOr(v.Get("building_width"), 0),
		BuildingLength:          floatOr(v.Get("building_length"), 0),
		RoofPitch:               DefaultPitch,
		Overhang:                floatOr(v.Get("overhang"), DefaultOverhang),
		Spacing:                 DefaultSpacingInches,
		LumberSize:              defaultLumberDim,
		WasteFactorPercent:      float64(intOr(v.Get("waste_factor_percent"), int(DefaultWastePercent))),
		LumberCostPerLinearFoot: floatOr(v.Get("lumber_cost_per_linear_foot"), 0),
		IncludeSheathing:        checked(v.Get("include_sheathing")),
		SheathingCostPerSheet:   floatOr(v.Get("sheathing_cost_per_sheet"), 0),
	}
	if strings.EqualFold(v.Get("mode"), string(ModeRoof)) {
		spec.Mode = ModeRoof
	}
	if strings.EqualFold(v.Get("wall_type"), string(WallInterior)) {
		spec.WallType = WallInterior
	}
	if strings.EqualFold(v.Get("roof_type"), string(RoofHip)) {
		spec.RoofType = RoofHip
	}
	if p, err := ParsePitch(v.Get("roof_pitch")); err == nil {
		spec.RoofPitch = p
	}
	if s := Spacing(intOr(v.Get("spacing"), 0)); s.Valid() {
		spec.Spacing = s
	}
	if size := strings.TrimSpace(v.Get("lumber_size")); size != "" {
		spec.LumberSize = size
	}
	spec.Openings = append(spec.Openings, formOpenings(v, OpeningWindow, DefaultWindowWidth, DefaultWindowHeight)...)
	spec.Openings = append(spec.Openings, formOpenings(v, OpeningDoor, DefaultDoorWidth, DefaultDoorHeight)...)
	return spec
}

func formOpenings(v url.Values, kind OpeningKind, width, height float64) []Opening {
	prefix := string(kind) + "_"
	counts := v[prefix+"count"]
	widths := v[prefix+"width"]
	heights := v[prefix+"height"]
	n := max(len(counts), len(widths), len(heights))
	if n == 0 {
		return nil
	}
	out := make([]Opening, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Opening{
			ID:     string(kind) + "-" + strconv.Itoa(i+1),
			Kind:   kind,
			Count:  intOr(at(counts, i), DefaultOpeningCount),
			Width:  floatOr(at(widths, i), width),
			Height: floatOr(at(heights, i), height),
		})
	}
	return out
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func floatOr(s string, def float64) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return def
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func intOr(s string, def int) int {
	f := floatOr(s, 0)
	if f == 0 {
		return def
	}
	n := int(math.Trunc(f))
	if n == 0 {
		return def
	}
	return n
}

func checked(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes", "checked":
		return true
	}
	return false
}
