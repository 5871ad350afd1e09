package framing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Mode string

const (
	ModeWall Mode = "wall"
	ModeRoof Mode = "roof"
)

type WallType string

const (
	WallExterior WallType = "exterior"
	WallInterior WallType = "interior"
)

type RoofType string

const (
	RoofGable RoofType = "gable"
	RoofHip   RoofType = "hip"
)

type OpeningKind string

const (
	OpeningWindow OpeningKind = "window"
	OpeningDoor   OpeningKind = "door"
)

// Spacing is the on-center distance between studs or rafters, in inches.
type Spacing int

const (
	Spacing16 Spacing = 16
	Spacing24 Spacing = 24
)

func (s Spacing) Feet() float64 {
	return float64(s) / 12.0
}

func (s Spacing) Valid() bool {
	return s == Spacing16 || s == Spacing24
}

// Pitch is a roof slope given as rise over run. The text form is "6:12";
// "6 in 12", "6/12" and a bare "6" (run 12) are accepted on input.
type Pitch struct {
	Rise float64
	Run  float64
}

var DefaultPitch = Pitch{Rise: 6, Run: 12}

func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Pitch{}, fmt.Errorf("empty pitch")
	}
	var parts []string
	switch {
	case strings.Contains(s, ":"):
		parts = strings.SplitN(s, ":", 2)
	case strings.Contains(s, "/"):
		parts = strings.SplitN(s, "/", 2)
	case strings.Contains(s, " in "):
		parts = strings.SplitN(s, " in ", 2)
	default:
		parts = []string{s, "12"}
	}
	rise, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid pitch rise %q: %w", parts[0], err)
	}
	run, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid pitch run %q: %w", parts[1], err)
	}
	if run <= 0 || rise < 0 {
		return Pitch{}, fmt.Errorf("invalid pitch %q", s)
	}
	return Pitch{Rise: rise, Run: run}, nil
}

// Multiplier converts a horizontal run into the sloped length along the roof.
func (p Pitch) Multiplier() float64 {
	return math.Sqrt(p.Rise*p.Rise+p.Run*p.Run) / p.Run
}

func (p Pitch) IsZero() bool {
	return p.Rise == 0 && p.Run == 0
}

func (p Pitch) String() string {
	if p.IsZero() {
		return ""
	}
	return strconv.FormatFloat(p.Rise, 'f', -1, 64) + ":" + strconv.FormatFloat(p.Run, 'f', -1, 64)
}

func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pitch) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*p = Pitch{}
		return nil
	}
	parsed, err := ParsePitch(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type Opening struct {
	ID     string      `json:"id,omitempty"`
	Kind   OpeningKind `json:"kind"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Count  int         `json:"count"`
}

func (o Opening) Area() float64 {
	return o.Width * o.Height * float64(o.Count)
}

// ProjectSpec is one immutable snapshot of the estimator inputs. Lengths are
// in feet, spacing in inches, costs in currency units.
type ProjectSpec struct {
	Mode Mode `json:"mode"`

	WallType WallType  `json:"wall_type"`
	Length   float64   `json:"length"`
	Height   float64   `json:"height"`
	Openings []Opening `json:"openings,omitempty"`

	RoofType       RoofType `json:"roof_type"`
	BuildingWidth  float64  `json:"building_width"`
	BuildingLength float64  `json:"building_length"`
	RoofPitch      Pitch    `json:"roof_pitch"`
	Overhang       float64  `json:"overhang"`

	Spacing                 Spacing `json:"spacing"`
	LumberSize              string  `json:"lumber_size"`
	WasteFactorPercent      float64 `json:"waste_factor_percent"`
	LumberCostPerLinearFoot float64 `json:"lumber_cost_per_linear_foot"`
	IncludeSheathing        bool    `json:"include_sheathing"`
	SheathingCostPerSheet   float64 `json:"sheathing_cost_per_sheet"`
}

type Costs struct {
	Lumber    float64 `json:"lumber"`
	Sheathing float64 `json:"sheathing"`
	Total     float64 `json:"total"`
}

type WallResult struct {
	StudCount               int     `json:"stud_count"`
	KingStudCount           int     `json:"king_stud_count"`
	JackStudCount           int     `json:"jack_stud_count"`
	TotalStudCount          int     `json:"total_stud_count"`
	StudLinearFeet          float64 `json:"stud_linear_feet"`
	PlateLinearFeet         float64 `json:"plate_linear_feet"`
	HeaderLinearFeet        float64 `json:"header_linear_feet"`
	RawLinearFeet           float64 `json:"raw_linear_feet"`
	WasteAdjustedLinearFeet float64 `json:"waste_adjusted_linear_feet"`
	WallArea                float64 `json:"wall_area"`
	OpeningArea             float64 `json:"opening_area"`
	SheathingArea           float64 `json:"sheathing_area"`
	SheathingSheets         int     `json:"sheathing_sheets"`
	Sheathed                bool    `json:"sheathed"`
	Costs                   Costs   `json:"costs"`
	WasteFactorPercent      float64 `json:"waste_factor_percent"`
	LumberSize              string  `json:"lumber_size"`
}

type RoofResult struct {
	CommonRafterCount       int     `json:"common_rafter_count"`
	HipRafterCount          int     `json:"hip_rafter_count"`
	JackRafterCount         int     `json:"jack_rafter_count"`
	RafterCount             int     `json:"rafter_count"`
	RafterLength            float64 `json:"rafter_length"`
	HipRafterLength         float64 `json:"hip_rafter_length"`
	RafterLinearFeet        float64 `json:"rafter_linear_feet"`
	JackRafterLinearFeet    float64 `json:"jack_rafter_linear_feet"`
	HipLinearFeet           float64 `json:"hip_linear_feet"`
	RidgeLinearFeet         float64 `json:"ridge_linear_feet"`
	RawLinearFeet           float64 `json:"raw_linear_feet"`
	WasteAdjustedLinearFeet float64 `json:"waste_adjusted_linear_feet"`
	PitchMultiplier         float64 `json:"pitch_multiplier"`
	RoofArea                float64 `json:"roof_area"`
	SheathingSheets         int     `json:"sheathing_sheets"`
	Sheathed                bool    `json:"sheathed"`
	Costs                   Costs   `json:"costs"`
	WasteFactorPercent      float64 `json:"waste_factor_percent"`
	LumberSize              string  `json:"lumber_size"`
}

// Result carries exactly one of Wall or Roof, selected by Mode. When Ready is
// false the inputs were not yet sufficient and the variant is zero-valued.
type Result struct {
	Mode  Mode        `json:"mode"`
	Ready bool        `json:"ready"`
	Wall  *WallResult `json:"wall,omitempty"`
	Roof  *RoofResult `json:"roof,omitempty"`
}
