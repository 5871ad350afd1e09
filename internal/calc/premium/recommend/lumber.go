// Package recommend turns linear-foot totals into what a lumber yard sells:
// whole stock boards and board feet.
package recommend

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"DIYCalc/internal/calc/framing"
)

const DefaultStockLength = 8.0

var stockLengths = []float64{8, 10, 12, 14, 16, 20}

var nominalSize = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)\s*$`)

type LumberInput struct {
	LinearFeet    float64 `json:"linear_feet"`
	LumberSize    string  `json:"lumber_size"`
	StockLengthFt float64 `json:"stock_length_ft"`
	PricePerBoard float64 `json:"price_per_board"`
}

type LumberResult struct {
	LumberSize        string  `json:"lumber_size"`
	StockLengthFt     float64 `json:"stock_length_ft"`
	Boards            int     `json:"boards"`
	BoardFeet         float64 `json:"board_feet"`
	BoardFeetPerBoard float64 `json:"board_feet_per_board"`
	Cost              float64 `json:"cost"`
	Notes             string  `json:"notes"`
}

// Lumber rounds a linear-foot total up to whole stock boards. Board feet use
// the nominal size, as lumber is priced.
func Lumber(in LumberInput) (LumberResult, error) {
	if in.LinearFeet < 0 {
		return LumberResult{}, fmt.Errorf("linear feet must not be negative")
	}
	if in.PricePerBoard < 0 {
		return LumberResult{}, fmt.Errorf("price per board must not be negative")
	}
	if in.LumberSize == "" {
		in.LumberSize = "2x4"
	}
	if in.StockLengthFt == 0 {
		in.StockLengthFt = DefaultStockLength
	}
	if !validStock(in.StockLengthFt) {
		return LumberResult{}, fmt.Errorf("unsupported stock length %g ft", in.StockLengthFt)
	}
	t, w, err := ParseNominal(in.LumberSize)
	if err != nil {
		return LumberResult{}, err
	}

	perFoot := t * w / 12
	boards := int(math.Ceil(in.LinearFeet / in.StockLengthFt))
	return LumberResult{
		LumberSize:        in.LumberSize,
		StockLengthFt:     in.StockLengthFt,
		Boards:            boards,
		BoardFeet:         perFoot * in.LinearFeet,
		BoardFeetPerBoard: perFoot * in.StockLengthFt,
		Cost:              float64(boards) * in.PricePerBoard,
		Notes:             fmt.Sprintf("%d boards of %s at %g ft.", boards, in.LumberSize, in.StockLengthFt),
	}, nil
}

// ParseNominal splits a nominal size such as "2x6" into thickness and width
// in inches.
func ParseNominal(size string) (thickness, width float64, err error) {
	m := nominalSize.FindStringSubmatch(size)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid lumber size %q", size)
	}
	thickness, _ = strconv.ParseFloat(m[1], 64)
	width, _ = strconv.ParseFloat(m[2], 64)
	if thickness <= 0 || width <= 0 {
		return 0, 0, fmt.Errorf("invalid lumber size %q", size)
	}
	return thickness, width, nil
}

func validStock(ft float64) bool {
	for _, s := range stockLengths {
		if ft == s {
			return true
		}
	}
	return false
}

type FramingLumberInput struct {
	Spec          framing.ProjectSpec `json:"spec"`
	StockLengthFt float64             `json:"stock_length_ft"`
	PricePerBoard float64             `json:"price_per_board"`
}

type FramingLumberResult struct {
	Ready    bool           `json:"ready"`
	Estimate framing.Result `json:"estimate"`
	Lumber   *LumberResult  `json:"lumber,omitempty"`
}

// Framing estimates in.Spec and lists the stock boards covering its
// waste-adjusted lumber total. Lumber is nil until the estimate is ready.
func Framing(in FramingLumberInput) (FramingLumberResult, error) {
	res, err := framing.Calculate(in.Spec)
	if err != nil {
		return FramingLumberResult{}, err
	}
	out := FramingLumberResult{Ready: res.Ready, Estimate: res}
	if !res.Ready {
		return out, nil
	}

	li := LumberInput{StockLengthFt: in.StockLengthFt, PricePerBoard: in.PricePerBoard}
	switch {
	case res.Wall != nil:
		li.LinearFeet, li.LumberSize = res.Wall.WasteAdjustedLinearFeet, res.Wall.LumberSize
	case res.Roof != nil:
		li.LinearFeet, li.LumberSize = res.Roof.WasteAdjustedLinearFeet, res.Roof.LumberSize
	}
	lr, err := Lumber(li)
	if err != nil {
		return FramingLumberResult{}, err
	}
	out.Lumber = &lr
	return out, nil
}
