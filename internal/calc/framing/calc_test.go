package framing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetCount(t *testing.T) {
	cases := []struct {
		area float64
		want int
	}{
		{0, 0},
		{-4, 0},
		{1, 1},
		{32, 1},
		{32.01, 2},
		{64, 2},
		{100, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SheetCount(tc.area), "area %.2f", tc.area)
	}
}

func TestCalculateDispatchesOnMode(t *testing.T) {
	res, err := Calculate(baseWall())
	require.NoError(t, err)
	assert.Equal(t, ModeWall, res.Mode)
	assert.NotNil(t, res.Wall)

	res, err = Calculate(baseRoof())
	require.NoError(t, err)
	assert.Equal(t, ModeRoof, res.Mode)
	assert.NotNil(t, res.Roof)

	spec := baseWall()
	spec.Mode = "floor"
	_, err = Calculate(spec)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "mode", verr.Field)
}

func TestCalculateIsIdempotent(t *testing.T) {
	spec := baseWall()
	spec.IncludeSheathing = true
	spec.LumberCostPerLinearFoot = 0.85
	spec.Openings = []Opening{{Kind: OpeningWindow, Width: 2.5, Height: 3, Count: 3}}

	first, err := Calculate(spec)
	require.NoError(t, err)
	second, err := Calculate(spec)
	require.NoError(t, err)
	assert.Equal(t, *first.Wall, *second.Wall)

	first, err = Calculate(baseRoof())
	require.NoError(t, err)
	second, err = Calculate(baseRoof())
	require.NoError(t, err)
	assert.Equal(t, *first.Roof, *second.Roof)
}

func TestCalculateDoesNotMutateOpenings(t *testing.T) {
	spec := baseWall()
	spec.Openings = []Opening{{ID: "w1", Kind: OpeningWindow, Width: 3, Height: 4, Count: 2}}
	before := append([]Opening(nil), spec.Openings...)

	_, err := Calculate(spec)
	require.NoError(t, err)
	assert.Equal(t, before, spec.Openings)
}

func randomSpec(rng *rand.Rand) ProjectSpec {
	spacing := Spacing16
	if rng.Intn(2) == 1 {
		spacing = Spacing24
	}
	spec := ProjectSpec{
		Spacing:                 spacing,
		WasteFactorPercent:      float64(rng.Intn(26)),
		LumberCostPerLinearFoot: rng.Float64() * 5,
		IncludeSheathing:        rng.Intn(2) == 1,
		SheathingCostPerSheet:   rng.Float64() * 60,
	}
	if rng.Intn(2) == 0 {
		spec.Mode = ModeWall
		spec.WallType = WallExterior
		if rng.Intn(2) == 1 {
			spec.WallType = WallInterior
		}
		spec.Length = rng.Float64() * 60
		spec.Height = 6 + rng.Float64()*6
		for i := rng.Intn(4); i > 0; i-- {
			spec.Openings = append(spec.Openings, Opening{
				Kind:   OpeningWindow,
				Width:  rng.Float64() * 8,
				Height: rng.Float64() * 8,
				Count:  1 + rng.Intn(4),
			})
		}
		return spec
	}
	spec.Mode = ModeRoof
	spec.RoofType = RoofGable
	if rng.Intn(2) == 1 {
		spec.RoofType = RoofHip
	}
	spec.BuildingWidth = rng.Float64() * 50
	spec.BuildingLength = rng.Float64() * 80
	spec.RoofPitch = Pitch{Rise: float64(rng.Intn(13)), Run: 12}
	spec.Overhang = rng.Float64() * 4
	return spec
}

func TestCalculatePropertiesHoldForRandomSpecs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		spec := randomSpec(rng)
		res, err := Calculate(spec)
		require.NoError(t, err, "spec %+v", spec)

		var raw, adjusted float64
		var quantities []float64
		switch spec.Mode {
		case ModeWall:
			require.NotNil(t, res.Wall)
			w := res.Wall
			raw, adjusted = w.RawLinearFeet, w.WasteAdjustedLinearFeet
			quantities = []float64{
				float64(w.TotalStudCount), w.StudLinearFeet, w.PlateLinearFeet, w.HeaderLinearFeet,
				w.SheathingArea, float64(w.SheathingSheets), w.Costs.Lumber, w.Costs.Sheathing, w.Costs.Total,
			}
			if spec.IncludeSheathing {
				assert.Equal(t, SheetCount(w.SheathingArea), w.SheathingSheets)
			}
		case ModeRoof:
			require.NotNil(t, res.Roof)
			r := res.Roof
			raw, adjusted = r.RawLinearFeet, r.WasteAdjustedLinearFeet
			quantities = []float64{
				float64(r.RafterCount), r.RafterLength, r.RafterLinearFeet, r.HipLinearFeet,
				r.RidgeLinearFeet, r.RoofArea, float64(r.SheathingSheets), r.Costs.Total,
			}
			if spec.IncludeSheathing {
				assert.Equal(t, SheetCount(r.RoofArea), r.SheathingSheets)
			}
		}

		for _, q := range quantities {
			assert.GreaterOrEqual(t, q, 0.0)
		}
		assert.GreaterOrEqual(t, adjusted, raw)
		if spec.WasteFactorPercent == 0 {
			assert.Equal(t, raw, adjusted)
		} else if raw > 0 {
			assert.Greater(t, adjusted, raw)
		}
	}
}
