package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSlab(t *testing.T) {
	res, err := Calculate(Input{LengthFt: 10, WidthFt: 10, ThicknessIn: 4, WastePercent: 10})
	require.NoError(t, err)

	assert.InDelta(t, 33.333, res.VolumeCuFt, 0.001)
	assert.InDelta(t, 36.667, res.VolumeWithWasteCuFt, 0.001)
	assert.InDelta(t, 1.358, res.CubicYards, 0.001)
	assert.Equal(t, 55, res.Bags)
	assert.InDelta(t, 162.96, res.Cost, 0.01)
}

func TestCalculateSlabDefaults(t *testing.T) {
	res, err := Calculate(Input{LengthFt: 27, WidthFt: 12, ThicknessIn: 1})
	require.NoError(t, err)

	assert.Equal(t, 5.0, res.WastePercent)
	assert.InDelta(t, 27*1.05/27.0, res.CubicYards, 1e-9)
	assert.InDelta(t, res.CubicYards*120, res.Cost, 1e-9)
}

func TestCalculateSlabInvalid(t *testing.T) {
	for _, in := range []Input{
		{WidthFt: 10, ThicknessIn: 4},
		{LengthFt: 10, WidthFt: 10},
		{LengthFt: 10, WidthFt: 10, ThicknessIn: 4, WastePercent: 60},
	} {
		_, err := Calculate(in)
		assert.Error(t, err, "%+v", in)
	}
}
