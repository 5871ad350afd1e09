package autodesign

import (
	"errors"
	"testing"

	"DIYCalc/internal/calc/framing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall() framing.ProjectSpec {
	return framing.ProjectSpec{
		Mode:               framing.ModeWall,
		WallType:           framing.WallExterior,
		Length:             20,
		Height:             8,
		Spacing:            framing.Spacing16,
		WasteFactorPercent: 10,
	}
}

func TestCompareSpacingWall(t *testing.T) {
	cmp, err := CompareSpacing(wall())
	require.NoError(t, err)
	require.Len(t, cmp.Options, 2)

	assert.Equal(t, framing.Spacing16, cmp.Options[0].Spacing)
	assert.Equal(t, 17, cmp.Options[0].Pieces)
	assert.InDelta(t, 215.6, cmp.Options[0].LinearFeet, 1e-9)

	assert.Equal(t, framing.Spacing24, cmp.Options[1].Spacing)
	assert.Equal(t, 12, cmp.Options[1].Pieces)
	assert.InDelta(t, 171.6, cmp.Options[1].LinearFeet, 1e-9)

	assert.Equal(t, framing.Spacing24, cmp.Recommended)
	assert.InDelta(t, 44.0, cmp.Savings, 1e-9)
}

func TestCompareSpacingRoof(t *testing.T) {
	spec := framing.ProjectSpec{
		Mode:           framing.ModeRoof,
		RoofType:       framing.RoofGable,
		BuildingWidth:  24,
		BuildingLength: 30,
		RoofPitch:      framing.DefaultPitch,
		Overhang:       1,
		Spacing:        framing.Spacing24,
	}
	cmp, err := CompareSpacing(spec)
	require.NoError(t, err)
	assert.Equal(t, 46, cmp.Options[0].Pieces)
	assert.Equal(t, 32, cmp.Options[1].Pieces)
	assert.Equal(t, framing.Spacing24, cmp.Recommended)
	assert.Greater(t, cmp.Savings, 0.0)
}

func TestCompareSpacingNotReady(t *testing.T) {
	spec := wall()
	spec.Length = 0
	cmp, err := CompareSpacing(spec)
	require.NoError(t, err)
	require.Len(t, cmp.Options, 2)
	assert.False(t, cmp.Options[0].Result.Ready)
	assert.Zero(t, cmp.Recommended)
	assert.NotEmpty(t, cmp.Notes)
}

func TestCompareSpacingInvalid(t *testing.T) {
	spec := wall()
	spec.WasteFactorPercent = 40
	_, err := CompareSpacing(spec)
	var verr *framing.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "waste_factor_percent", verr.Field)
}
