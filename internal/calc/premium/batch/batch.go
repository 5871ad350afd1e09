package batch

import (
	"errors"
	"fmt"

	"DIYCalc/internal/calc/framing"
)

// MaxItems caps one batch request.
const MaxItems = 500

var ErrNoItems = errors.New("no items")

type FramingBatchInput struct {
	Items []framing.ProjectSpec `json:"items"`
}

type FramingBatchResult struct {
	Count   int              `json:"count"`
	Ready   int              `json:"ready"`
	Results []framing.Result `json:"results"`
	Totals  framing.Costs    `json:"totals"`
}

// ItemError wraps the error of a single batch item with its position.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// CalculateFraming estimates every item in order. The first invalid item
// aborts the batch; items without enough input are kept as not-ready results
// and left out of the totals.
func CalculateFraming(in FramingBatchInput) (FramingBatchResult, error) {
	if len(in.Items) == 0 {
		return FramingBatchResult{}, ErrNoItems
	}
	if len(in.Items) > MaxItems {
		return FramingBatchResult{}, fmt.Errorf("too many items: %d (max %d)", len(in.Items), MaxItems)
	}
	out := FramingBatchResult{Results: make([]framing.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := framing.Calculate(item)
		if err != nil {
			return FramingBatchResult{}, &ItemError{Index: i, Err: err}
		}
		out.Results = append(out.Results, res)
		if !res.Ready {
			continue
		}
		out.Ready++
		c := Costs(res)
		out.Totals.Lumber += c.Lumber
		out.Totals.Sheathing += c.Sheathing
		out.Totals.Total += c.Total
	}
	out.Count = len(out.Results)
	return out, nil
}

// Costs returns the cost block of whichever variant res carries.
func Costs(res framing.Result) framing.Costs {
	switch {
	case res.Wall != nil:
		return res.Wall.Costs
	case res.Roof != nil:
		return res.Roof.Costs
	}
	return framing.Costs{}
}
