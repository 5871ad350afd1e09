package slab

import (
	"fmt"
	"math"
)

const (
	cubicFeetPerYard    = 27.0
	bagsPerCubicYard    = 40.0
	defaultWastePercent = 5.0
	defaultPricePerYard = 120.0
)

type Input struct {
	LengthFt     float64 `json:"length_ft"`
	WidthFt      float64 `json:"width_ft"`
	ThicknessIn  float64 `json:"thickness_in"`
	WastePercent float64 `json:"waste_percent"`
	PricePerYard float64 `json:"price_per_yard"`
}

type Result struct {
	VolumeCuFt          float64 `json:"volume_cu_ft"`
	VolumeWithWasteCuFt float64 `json:"volume_with_waste_cu_ft"`
	CubicYards          float64 `json:"cubic_yards"`
	Bags                int     `json:"bags"`
	Cost                float64 `json:"cost"`
	WastePercent        float64 `json:"waste_percent"`
	Notes               string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.LengthFt <= 0 || in.WidthFt <= 0 || in.ThicknessIn <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.WastePercent < 0 || in.WastePercent > 50 {
		return Result{}, fmt.Errorf("waste must be between 0 and 50 percent")
	}
	if in.WastePercent == 0 {
		in.WastePercent = defaultWastePercent
	}
	if in.PricePerYard <= 0 {
		in.PricePerYard = defaultPricePerYard
	}

	volume := in.LengthFt * in.WidthFt * (in.ThicknessIn / 12.0)
	withWaste := volume * (1 + in.WastePercent/100)
	yards := withWaste / cubicFeetPerYard

	return Result{
		VolumeCuFt:          volume,
		VolumeWithWasteCuFt: withWaste,
		CubicYards:          yards,
		Bags:                int(math.Ceil(yards * bagsPerCubicYard)),
		Cost:                yards * in.PricePerYard,
		WastePercent:        in.WastePercent,
		Notes:               "Bag count assumes 40 premix bags per cubic yard.",
	}, nil
}
