package paint

import (
	"fmt"
	"math"
)

// Average opening sizes and coverage used by the paint estimator.
const (
	doorAreaSqFt          = 20.0
	windowAreaSqFt        = 15.0
	coverageSqFtPerGallon = 350.0
	defaultPricePerGallon = 45.0
)

type Input struct {
	RoomLengthFt    float64 `json:"room_length_ft"`
	RoomWidthFt     float64 `json:"room_width_ft"`
	CeilingHeightFt float64 `json:"ceiling_height_ft"`
	Doors           int     `json:"doors"`
	Windows         int     `json:"windows"`
	Coats           int     `json:"coats"`
	PricePerGallon  float64 `json:"price_per_gallon"`
}

type Result struct {
	WallAreaSqFt      float64 `json:"wall_area_sq_ft"`
	PaintableAreaSqFt float64 `json:"paintable_area_sq_ft"`
	TotalAreaSqFt     float64 `json:"total_area_sq_ft"`
	Gallons           int     `json:"gallons"`
	Cost              float64 `json:"cost"`
	Notes             string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.RoomLengthFt <= 0 || in.RoomWidthFt <= 0 || in.CeilingHeightFt <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.Doors < 0 || in.Windows < 0 {
		return Result{}, fmt.Errorf("door and window counts must not be negative")
	}
	if in.Coats > 3 {
		return Result{}, fmt.Errorf("at most 3 coats")
	}
	if in.Coats <= 0 {
		in.Coats = 1
	}
	if in.PricePerGallon <= 0 {
		in.PricePerGallon = defaultPricePerGallon
	}

	wall := 2 * (in.RoomLengthFt + in.RoomWidthFt) * in.CeilingHeightFt
	paintable := math.Max(0, wall-float64(in.Doors)*doorAreaSqFt-float64(in.Windows)*windowAreaSqFt)
	total := paintable * float64(in.Coats)
	gallons := int(math.Ceil(total / coverageSqFtPerGallon))

	return Result{
		WallAreaSqFt:      wall,
		PaintableAreaSqFt: paintable,
		TotalAreaSqFt:     total,
		Gallons:           gallons,
		Cost:              float64(gallons) * in.PricePerGallon,
		Notes:             "Assumes 350 sq ft per gallon, 20 sq ft per door and 15 sq ft per window.",
	}, nil
}
