package framing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseWall() ProjectSpec {
	return ProjectSpec{
		Mode:               ModeWall,
		WallType:           WallExterior,
		Length:             20,
		Height:             8,
		Spacing:            Spacing16,
		LumberSize:         "2x4",
		WasteFactorPercent: 10,
	}
}

func TestWallFramingExteriorNoOpenings(t *testing.T) {
	res, err := ComputeWallFraming(baseWall())
	require.NoError(t, err)
	require.True(t, res.Ready)
	require.NotNil(t, res.Wall)
	assert.Nil(t, res.Roof)

	w := res.Wall
	assert.Equal(t, 17, w.StudCount)
	assert.Equal(t, 17, w.TotalStudCount)
	assert.InDelta(t, 60.0, w.PlateLinearFeet, 1e-9, "double top plate plus bottom plate")
	assert.InDelta(t, 0.0, w.HeaderLinearFeet, 1e-9)
	assert.InDelta(t, 136.0, w.StudLinearFeet, 1e-9)
	assert.InDelta(t, 196.0, w.RawLinearFeet, 1e-9)
	assert.InDelta(t, 215.6, w.WasteAdjustedLinearFeet, 1e-9)
	assert.Equal(t, 0, w.SheathingSheets)
	assert.InDelta(t, 0.0, w.Costs.Total, 1e-9)
	assert.Equal(t, "2x4", w.LumberSize)
}

func TestWallFramingInteriorSinglePlate(t *testing.T) {
	spec := baseWall()
	spec.WallType = WallInterior
	spec.Length = 10
	spec.Spacing = Spacing24
	spec.WasteFactorPercent = 0

	res, err := ComputeWallFraming(spec)
	require.NoError(t, err)
	w := res.Wall
	assert.Equal(t, 7, w.StudCount)
	assert.InDelta(t, 20.0, w.PlateLinearFeet, 1e-9)
	assert.InDelta(t, 56.0, w.StudLinearFeet, 1e-9)
	assert.InDelta(t, 76.0, w.RawLinearFeet, 1e-9)
	assert.Equal(t, w.RawLinearFeet, w.WasteAdjustedLinearFeet)
}

func TestWallFramingWithOpeningsAndSheathing(t *testing.T) {
	spec := baseWall()
	spec.Length = 12
	spec.LumberCostPerLinearFoot = 1.5
	spec.IncludeSheathing = true
	spec.SheathingCostPerSheet = 20
	spec.Openings = []Opening{
		NewOpening(OpeningWindow, 3, 4, 2),
		NewOpening(OpeningDoor, 3, 6.75, 1),
	}

	res, err := ComputeWallFraming(spec)
	require.NoError(t, err)
	w := res.Wall

	assert.Equal(t, 11, w.StudCount)
	assert.Equal(t, 6, w.KingStudCount)
	assert.Equal(t, 6, w.JackStudCount)
	assert.Equal(t, 23, w.TotalStudCount)
	assert.InDelta(t, 184.0, w.StudLinearFeet, 1e-9)
	assert.InDelta(t, 36.0, w.PlateLinearFeet, 1e-9)
	assert.InDelta(t, 10.5, w.HeaderLinearFeet, 1e-9, "half a foot of bearing per opening")
	assert.InDelta(t, 230.5, w.RawLinearFeet, 1e-9)
	assert.InDelta(t, 253.55, w.WasteAdjustedLinearFeet, 1e-9)

	assert.InDelta(t, 96.0, w.WallArea, 1e-9)
	assert.InDelta(t, 44.25, w.OpeningArea, 1e-9)
	assert.InDelta(t, 51.75, w.SheathingArea, 1e-9)
	assert.Equal(t, 2, w.SheathingSheets)
	assert.True(t, w.Sheathed)

	assert.InDelta(t, 380.325, w.Costs.Lumber, 1e-9)
	assert.InDelta(t, 40.0, w.Costs.Sheathing, 1e-9)
	assert.InDelta(t, 420.325, w.Costs.Total, 1e-9)
}

func TestWallFramingSheathingCostIgnoredWhenDisabled(t *testing.T) {
	spec := baseWall()
	spec.SheathingCostPerSheet = 25
	spec.LumberCostPerLinearFoot = 1

	res, err := ComputeWallFraming(spec)
	require.NoError(t, err)
	assert.False(t, res.Wall.Sheathed)
	assert.InDelta(t, 0.0, res.Wall.SheathingArea, 1e-9)
	assert.InDelta(t, 0.0, res.Wall.Costs.Sheathing, 1e-9)
	assert.InDelta(t, res.Wall.Costs.Lumber, res.Wall.Costs.Total, 1e-9)
}

func TestWallFramingOversizedOpeningsClampSheathing(t *testing.T) {
	spec := baseWall()
	spec.Length = 4
	spec.IncludeSheathing = true
	spec.Openings = []Opening{{Kind: OpeningWindow, Width: 10, Height: 10, Count: 1}}

	res, err := ComputeWallFraming(spec)
	require.NoError(t, err)
	assert.True(t, res.Wall.Sheathed)
	assert.InDelta(t, 0.0, res.Wall.SheathingArea, 1e-9)
	assert.Equal(t, 0, res.Wall.SheathingSheets)
}

func TestWallFramingInsufficientInput(t *testing.T) {
	for name, mutate := range map[string]func(*ProjectSpec){
		"no length": func(s *ProjectSpec) { s.Length = 0 },
		"no height": func(s *ProjectSpec) { s.Height = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			spec := baseWall()
			mutate(&spec)
			res, err := ComputeWallFraming(spec)
			require.NoError(t, err)
			assert.False(t, res.Ready)
			require.NotNil(t, res.Wall, "variant is present even before inputs are complete")
			assert.Equal(t, 0, res.Wall.StudCount)
			assert.Equal(t, 10.0, res.Wall.WasteFactorPercent)
		})
	}
}

func TestWallFramingRejectsOutOfRange(t *testing.T) {
	cases := map[string]struct {
		mutate func(*ProjectSpec)
		field  string
	}{
		"short wall":      {func(s *ProjectSpec) { s.Height = 5 }, "height"},
		"negative length": {func(s *ProjectSpec) { s.Length = -1 }, "length"},
		"waste too high":  {func(s *ProjectSpec) { s.WasteFactorPercent = 30 }, "waste_factor_percent"},
		"odd spacing":     {func(s *ProjectSpec) { s.Spacing = 12 }, "spacing"},
		"bad wall type":   {func(s *ProjectSpec) { s.WallType = "party" }, "wall_type"},
		"zero count": {func(s *ProjectSpec) {
			s.Openings = []Opening{{Kind: OpeningDoor, Width: 3, Height: 7, Count: 0}}
		}, "openings[0].count"},
		"negative cost": {func(s *ProjectSpec) { s.LumberCostPerLinearFoot = -2 }, "lumber_cost_per_linear_foot"},
		"huge length":   {func(s *ProjectSpec) { s.Length = 1e20 }, "length"},
		"huge height":   {func(s *ProjectSpec) { s.Height = MaxDimension + 1 }, "height"},
		"nan length":    {func(s *ProjectSpec) { s.Length = math.NaN() }, "length"},
		"huge opening": {func(s *ProjectSpec) {
			s.Openings = []Opening{{Kind: OpeningWindow, Width: 1e20, Height: 4, Count: 1}}
		}, "openings[0]"},
		"huge count": {func(s *ProjectSpec) {
			s.Openings = []Opening{{Kind: OpeningWindow, Width: 3, Height: 4, Count: MaxOpeningCount + 1}}
		}, "openings[0].count"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			spec := baseWall()
			tc.mutate(&spec)
			_, err := ComputeWallFraming(spec)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestWallFramingAtMaxLength(t *testing.T) {
	spec := baseWall()
	spec.Length = MaxDimension
	res, err := ComputeWallFraming(spec)
	require.NoError(t, err)
	assert.Equal(t, 752, res.Wall.StudCount)
	assert.Greater(t, res.Wall.StudLinearFeet, 0.0)
}
