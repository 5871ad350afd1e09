package autodesign

import "DIYCalc/internal/calc/framing"

type SpacingOption struct {
	Spacing    framing.Spacing `json:"spacing"`
	Result     framing.Result  `json:"result"`
	Pieces     int             `json:"pieces"`
	LinearFeet float64         `json:"linear_feet"`
	TotalCost  float64         `json:"total_cost"`
}

type SpacingComparison struct {
	Options     []SpacingOption `json:"options"`
	Recommended framing.Spacing `json:"recommended,omitempty"`
	Savings     float64         `json:"linear_feet_saved"`
	Notes       string          `json:"notes"`
}

// CompareSpacing estimates spec at 16" and 24" on center and recommends the
// layout needing less lumber. The spec's own spacing is ignored.
func CompareSpacing(spec framing.ProjectSpec) (SpacingComparison, error) {
	var out SpacingComparison
	ready := true
	for _, s := range []framing.Spacing{framing.Spacing16, framing.Spacing24} {
		spec.Spacing = s
		res, err := framing.Calculate(spec)
		if err != nil {
			return SpacingComparison{}, err
		}
		ready = ready && res.Ready
		out.Options = append(out.Options, option(s, res))
	}
	if !ready {
		out.Notes = "Enter the required dimensions to compare layouts."
		return out, nil
	}

	a, b := out.Options[0], out.Options[1]
	if b.LinearFeet < a.LinearFeet {
		out.Recommended = b.Spacing
		out.Savings = a.LinearFeet - b.LinearFeet
		out.Notes = `24" on center uses less lumber. Check that local code allows it for this wall or roof.`
	} else {
		out.Recommended = a.Spacing
		out.Savings = b.LinearFeet - a.LinearFeet
		out.Notes = `16" on center; wider spacing saves no lumber here.`
	}
	return out, nil
}

func option(s framing.Spacing, res framing.Result) SpacingOption {
	o := SpacingOption{Spacing: s, Result: res}
	switch {
	case res.Wall != nil:
		o.Pieces = res.Wall.TotalStudCount
		o.LinearFeet = res.Wall.WasteAdjustedLinearFeet
		o.TotalCost = res.Wall.Costs.Total
	case res.Roof != nil:
		o.Pieces = res.Roof.RafterCount
		o.LinearFeet = res.Roof.WasteAdjustedLinearFeet
		o.TotalCost = res.Roof.Costs.Total
	}
	return o
}
