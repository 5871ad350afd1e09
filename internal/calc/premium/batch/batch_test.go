package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"DIYCalc/internal/calc/framing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall(length float64) framing.ProjectSpec {
	return framing.ProjectSpec{
		Mode:                    framing.ModeWall,
		WallType:                framing.WallExterior,
		Length:                  length,
		Height:                  8,
		Spacing:                 framing.Spacing16,
		WasteFactorPercent:      10,
		LumberCostPerLinearFoot: 1,
	}
}

func TestCalculateFraming(t *testing.T) {
	res, err := CalculateFraming(FramingBatchInput{Items: []framing.ProjectSpec{wall(20), wall(0), wall(20)}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 2, res.Ready)
	assert.False(t, res.Results[1].Ready)
	assert.InDelta(t, 431.2, res.Totals.Lumber, 1e-9)
	assert.InDelta(t, 431.2, res.Totals.Total, 1e-9)
}

func TestCalculateFramingEmpty(t *testing.T) {
	_, err := CalculateFraming(FramingBatchInput{})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCalculateFramingTooMany(t *testing.T) {
	items := make([]framing.ProjectSpec, MaxItems+1)
	_, err := CalculateFraming(FramingBatchInput{Items: items})
	assert.Error(t, err)
}

func TestCalculateFramingItemError(t *testing.T) {
	bad := wall(20)
	bad.Spacing = 18
	_, err := CalculateFraming(FramingBatchInput{Items: []framing.ProjectSpec{wall(20), bad}})

	var ierr *ItemError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, 1, ierr.Index)
	var verr *framing.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "spacing", verr.Field)
}

func TestHandlerFraming(t *testing.T) {
	body, _ := json.Marshal(FramingBatchInput{Items: []framing.ProjectSpec{wall(20)}})
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Framing(rec, httptest.NewRequest(http.MethodPost, "/api/tools/framing/batch", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res FramingBatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 17, res.Results[0].Wall.StudCount)

	rec = httptest.NewRecorder()
	h.Framing(rec, httptest.NewRequest(http.MethodPost, "/api/tools/framing/batch", bytes.NewBufferString(`{"items":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
